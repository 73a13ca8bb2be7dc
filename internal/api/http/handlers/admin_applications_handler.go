package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// AdminApplicationsHandler manages the review queue endpoints.
type AdminApplicationsHandler struct {
	applications *service.ApplicationService
	reviews      *service.ReviewService
}

// NewAdminApplicationsHandler constructs handler.
func NewAdminApplicationsHandler(applicationService *service.ApplicationService, reviewService *service.ReviewService) *AdminApplicationsHandler {
	return &AdminApplicationsHandler{applications: applicationService, reviews: reviewService}
}

// List GET /admin/applications.
func (h *AdminApplicationsHandler) List(c *fiber.Ctx) error {
	apps, err := h.applications.ListForAdmin(c.Context(), parseApplicationFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponses(apps)})
}

// Get GET /admin/applications/:id.
func (h *AdminApplicationsHandler) Get(c *fiber.Ctx) error {
	app, err := h.applications.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(app)})
}

// PendingCounts GET /admin/applications/pending-counts.
func (h *AdminApplicationsHandler) PendingCounts(c *fiber.Ctx) error {
	counts := fiber.Map{}
	for _, kind := range []domain.ApplicationKind{
		domain.ApplicationKindVolunteer,
		domain.ApplicationKindInternship,
		domain.ApplicationKindTypeChange,
	} {
		count, err := h.applications.PendingCount(c.Context(), kind)
		if err != nil {
			return err
		}
		counts[string(kind)] = count
	}
	return c.JSON(fiber.Map{"data": counts})
}

// Approve POST /admin/applications/:id/approve.
func (h *AdminApplicationsHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.ReviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	app, err := h.reviews.Approve(c.Context(), c.Params("id"), principal.User.ID, req.AdminNotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(app)})
}

// Reject POST /admin/applications/:id/reject.
func (h *AdminApplicationsHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	notes := ""
	if req.AdminNotes != nil {
		notes = *req.AdminNotes
	}
	app, err := h.reviews.Reject(c.Context(), c.Params("id"), principal.User.ID, notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(app)})
}

// Delete DELETE /admin/applications/:id.
func (h *AdminApplicationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.applications.Purge(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
