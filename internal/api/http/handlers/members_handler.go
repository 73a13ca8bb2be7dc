package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// MembersHandler manages the admin membership registry endpoints.
type MembersHandler struct {
	members *service.MemberService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(memberService *service.MemberService) *MembersHandler {
	return &MembersHandler{members: memberService}
}

// List GET /admin/members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	filter := repository.MemberFilter{
		ActiveOnly: c.QueryBool("active_only"),
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	filter.Limit, filter.Offset = parsePaging(c)

	members, err := h.members.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		items = append(items, memberResponse(&members[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /admin/members/:id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	member, err := h.members.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": memberResponse(member)})
}

// Create POST /admin/members.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.members.Create(c.Context(), memberInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": memberResponse(member)})
}

// Update PUT /admin/members/:id.
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.members.Update(c.Context(), c.Params("id"), memberInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": memberResponse(member)})
}

// Delete DELETE /admin/members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	if err := h.members.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func memberInput(req dto.MemberRequest) service.MemberInput {
	return service.MemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		JoinedAt: req.JoinedAt,
		Active:   req.Active,
	}
}

func memberResponse(member *domain.Member) dto.MemberResponse {
	return dto.MemberResponse{
		ID:           member.ID,
		MembershipID: member.MembershipID,
		Name:         member.Name,
		Email:        member.Email,
		Phone:        member.Phone,
		JoinedAt:     member.JoinedAt,
		Active:       member.Active,
		CreatedAt:    member.CreatedAt,
	}
}
