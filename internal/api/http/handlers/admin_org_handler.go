package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// AdminOrgHandler manages teams, team members and supporters.
type AdminOrgHandler struct {
	org *service.OrgService
}

// NewAdminOrgHandler constructs handler.
func NewAdminOrgHandler(orgService *service.OrgService) *AdminOrgHandler {
	return &AdminOrgHandler{org: orgService}
}

// CreateTeam POST /admin/teams.
func (h *AdminOrgHandler) CreateTeam(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	team, err := h.org.CreateTeam(c.Context(), service.TeamInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": team})
}

// UpdateTeam PUT /admin/teams/:id.
func (h *AdminOrgHandler) UpdateTeam(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	team, err := h.org.UpdateTeam(c.Context(), c.Params("id"), service.TeamInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": team})
}

// DeleteTeam DELETE /admin/teams/:id.
func (h *AdminOrgHandler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.org.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddTeamMember POST /admin/teams/:id/members.
func (h *AdminOrgHandler) AddTeamMember(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.org.AddTeamMember(c.Context(), c.Params("id"), teamMemberInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": member})
}

// UpdateTeamMember PUT /admin/team-members/:id.
func (h *AdminOrgHandler) UpdateTeamMember(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.org.UpdateTeamMember(c.Context(), c.Params("id"), teamMemberInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": member})
}

// RemoveTeamMember DELETE /admin/team-members/:id.
func (h *AdminOrgHandler) RemoveTeamMember(c *fiber.Ctx) error {
	if err := h.org.RemoveTeamMember(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateSupporter POST /admin/supporters.
func (h *AdminOrgHandler) CreateSupporter(c *fiber.Ctx) error {
	var req dto.SupporterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	supporter, err := h.org.CreateSupporter(c.Context(), supporterInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": supporter})
}

// UpdateSupporter PUT /admin/supporters/:id.
func (h *AdminOrgHandler) UpdateSupporter(c *fiber.Ctx) error {
	var req dto.SupporterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	supporter, err := h.org.UpdateSupporter(c.Context(), c.Params("id"), supporterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": supporter})
}

// DeleteSupporter DELETE /admin/supporters/:id.
func (h *AdminOrgHandler) DeleteSupporter(c *fiber.Ctx) error {
	if err := h.org.DeleteSupporter(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func teamMemberInput(req dto.TeamMemberRequest) service.TeamMemberInput {
	return service.TeamMemberInput{
		Name:      req.Name,
		RoleTitle: req.RoleTitle,
		Photo:     req.Photo,
		SortOrder: req.SortOrder,
	}
}

func supporterInput(req dto.SupporterRequest) service.SupporterInput {
	return service.SupporterInput{
		Name:       req.Name,
		LogoPath:   req.LogoPath,
		WebsiteURL: req.WebsiteURL,
		SortOrder:  req.SortOrder,
	}
}
