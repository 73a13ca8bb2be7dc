package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.Submit(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contactMessageResponse(msg)})
}

// List GET /admin/contact-messages.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePaging(c)
	msgs, err := h.service.List(c.Context(), c.QueryBool("unread_only"), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ContactMessageResponse, 0, len(msgs))
	for i := range msgs {
		items = append(items, contactMessageResponse(&msgs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /admin/contact-messages/:id.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	msg, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactMessageResponse(msg)})
}

// MarkRead POST /admin/contact-messages/:id/read.
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.service.MarkRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete DELETE /admin/contact-messages/:id.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func contactMessageResponse(msg *domain.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Body:      msg.Body,
		ReadAt:    msg.ReadAt,
		CreatedAt: msg.CreatedAt,
	}
}
