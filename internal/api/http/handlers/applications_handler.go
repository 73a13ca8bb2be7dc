package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// ApplicationsHandler manages the user-facing application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// SubmitVolunteer POST /applications/volunteer.
func (h *ApplicationsHandler) SubmitVolunteer(c *fiber.Ctx) error {
	return h.submitForm(c, domain.ApplicationKindVolunteer)
}

// SubmitInternship POST /applications/internship.
func (h *ApplicationsHandler) SubmitInternship(c *fiber.Ctx) error {
	return h.submitForm(c, domain.ApplicationKindInternship)
}

func (h *ApplicationsHandler) submitForm(c *fiber.Ctx, kind domain.ApplicationKind) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.FormApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	app, err := h.service.SubmitForm(c.Context(), kind, principal.User.ID, service.FormApplicationInput{
		FullName: req.FullName,
		Email:    req.Email,
		Fields:   req.Fields,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": applicationResponse(app)})
}

// SubmitTypeChange POST /applications/type-change.
func (h *ApplicationsHandler) SubmitTypeChange(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.TypeChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	app, err := h.service.SubmitTypeChange(c.Context(), principal.User.ID, domain.UserType(strings.ToUpper(strings.TrimSpace(req.RequestedUserType))))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": applicationResponse(app)})
}

// ListMine GET /applications.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	limit, offset := parsePaging(c)
	apps, err := h.service.ListMine(c.Context(), principal.User.ID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponses(apps)})
}

func applicationResponse(app *domain.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:                app.ID,
		Kind:              app.Kind,
		Status:            app.Status,
		SubmittedBy:       app.SubmittedBy,
		RequestedUserType: app.RequestedUserType,
		Payload:           app.Payload,
		AdminNotes:        app.AdminNotes,
		ReviewedBy:        app.ReviewedBy,
		ProcessedAt:       app.ProcessedAt,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}

func applicationResponses(apps []domain.Application) []dto.ApplicationResponse {
	items := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, applicationResponse(&apps[i]))
	}
	return items
}

func parsePaging(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func parseApplicationFilter(c *fiber.Ctx) repository.ApplicationFilter {
	filter := repository.ApplicationFilter{}
	if kindStr := c.Query("kind"); kindStr != "" {
		kind := domain.ApplicationKind(strings.ToUpper(strings.TrimSpace(kindStr)))
		filter.Kind = &kind
	}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.ApplicationStatus(strings.ToUpper(strings.TrimSpace(part))))
		}
	}
	filter.Limit, filter.Offset = parsePaging(c)
	return filter
}
