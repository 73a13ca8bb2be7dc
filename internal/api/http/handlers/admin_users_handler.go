package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// AdminUsersHandler manages account administration endpoints.
type AdminUsersHandler struct {
	users *service.UserService
}

// NewAdminUsersHandler constructs handler.
func NewAdminUsersHandler(userService *service.UserService) *AdminUsersHandler {
	return &AdminUsersHandler{users: userService}
}

// List GET /admin/users.
func (h *AdminUsersHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{}
	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.UserRole(strings.ToUpper(strings.TrimSpace(roleStr)))
		filter.Role = &role
	}
	if typeStr := c.Query("user_type"); typeStr != "" {
		userType := domain.UserType(strings.ToUpper(strings.TrimSpace(typeStr)))
		filter.UserType = &userType
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	filter.Limit, filter.Offset = parsePaging(c)

	users, err := h.users.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /admin/users/:id.
func (h *AdminUsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userSummary(user)})
}

// Update PUT /admin/users/:id.
func (h *AdminUsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := service.UserUpdateInput{
		Name:     req.Name,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.UserRole(strings.ToUpper(strings.TrimSpace(*req.Role)))
		input.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		input.Status = &status
	}
	user, err := h.users.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userSummary(user)})
}

// Deactivate POST /admin/users/:id/deactivate.
func (h *AdminUsersHandler) Deactivate(c *fiber.Ctx) error {
	user, err := h.users.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userSummary(user)})
}

// Delete DELETE /admin/users/:id.
func (h *AdminUsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
