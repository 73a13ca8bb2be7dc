package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// StoriesHandler manages voice-of-change story endpoints, public and admin.
type StoriesHandler struct {
	service *service.StoryService
}

// NewStoriesHandler constructs handler.
func NewStoriesHandler(storyService *service.StoryService) *StoriesHandler {
	return &StoriesHandler{service: storyService}
}

// Submit POST /stories. Anonymous submissions are allowed; a logged-in
// caller is recorded as the submitter.
func (h *StoriesHandler) Submit(c *fiber.Ctx) error {
	var req dto.StorySubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	var submittedBy *string
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		submittedBy = &principal.User.ID
	}
	story, err := h.service.Submit(c.Context(), submittedBy, service.StoryInput{
		Title:      req.Title,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": storyResponse(story)})
}

// ListPublished GET /stories.
func (h *StoriesHandler) ListPublished(c *fiber.Ctx) error {
	limit, offset := parsePaging(c)
	stories, err := h.service.ListPublished(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.PublicStoryResponse, 0, len(stories))
	for i := range stories {
		items = append(items, publicStoryResponse(&stories[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListForAdmin GET /admin/stories.
func (h *StoriesHandler) ListForAdmin(c *fiber.Ctx) error {
	filter := repository.StoryFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.StoryStatus(strings.ToUpper(strings.TrimSpace(part))))
		}
	}
	filter.Limit, filter.Offset = parsePaging(c)
	stories, err := h.service.ListForAdmin(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.StoryResponse, 0, len(stories))
	for i := range stories {
		items = append(items, storyResponse(&stories[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Approve POST /admin/stories/:id/approve.
func (h *StoriesHandler) Approve(c *fiber.Ctx) error {
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
	story, err := h.service.Approve(c.Context(), c.Params("id"), principal.User.ID, req.AdminNotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": storyResponse(story)})
}

// Reject POST /admin/stories/:id/reject.
func (h *StoriesHandler) Reject(c *fiber.Ctx) error {
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
	story, err := h.service.Reject(c.Context(), c.Params("id"), principal.User.ID, notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": storyResponse(story)})
}

// Unpublish POST /admin/stories/:id/unpublish.
func (h *StoriesHandler) Unpublish(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	story, err := h.service.Unpublish(c.Context(), c.Params("id"), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": storyResponse(story)})
}

// Delete DELETE /admin/stories/:id.
func (h *StoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func storyResponse(story *domain.Story) dto.StoryResponse {
	return dto.StoryResponse{
		ID:          story.ID,
		Title:       story.Title,
		AuthorName:  story.AuthorName,
		Body:        story.Body,
		Status:      story.Status,
		AdminNotes:  story.AdminNotes,
		PublishedAt: story.PublishedAt,
		CreatedAt:   story.CreatedAt,
	}
}

func publicStoryResponse(story *domain.Story) dto.PublicStoryResponse {
	return dto.PublicStoryResponse{
		ID:          story.ID,
		Title:       story.Title,
		AuthorName:  story.AuthorName,
		Body:        story.Body,
		PublishedAt: story.PublishedAt,
	}
}
