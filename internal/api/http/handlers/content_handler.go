package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/service"
)

// ContentHandler serves the public site content endpoints.
type ContentHandler struct {
	activities *service.ActivityService
	gallery    *service.GalleryService
	resources  *service.ResourceService
	org        *service.OrgService
}

// NewContentHandler constructs handler.
func NewContentHandler(activities *service.ActivityService, gallery *service.GalleryService, resources *service.ResourceService, org *service.OrgService) *ContentHandler {
	return &ContentHandler{activities: activities, gallery: gallery, resources: resources, org: org}
}

// ListActivities GET /activities.
func (h *ContentHandler) ListActivities(c *fiber.Ctx) error {
	limit, offset := parsePaging(c)
	activities, err := h.activities.ListPublished(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponses(activities)})
}

// GetActivity GET /activities/:slug.
func (h *ContentHandler) GetActivity(c *fiber.Ctx) error {
	activity, err := h.activities.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponse(activity)})
}

// ListGallery GET /gallery.
func (h *ContentHandler) ListGallery(c *fiber.Ctx) error {
	images, err := h.gallery.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.GalleryImageResponse, 0, len(images))
	for i := range images {
		items = append(items, galleryImageResponse(&images[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListResources GET /resources.
func (h *ContentHandler) ListResources(c *fiber.Ctx) error {
	var category *domain.ResourceCategory
	if categoryStr := c.Query("category"); categoryStr != "" {
		parsed := domain.ResourceCategory(strings.ToUpper(strings.TrimSpace(categoryStr)))
		category = &parsed
	}
	resources, err := h.resources.List(c.Context(), category)
	if err != nil {
		return err
	}
	items := make([]dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		items = append(items, resourceResponse(&resources[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetResource GET /resources/:slug.
func (h *ContentHandler) GetResource(c *fiber.Ctx) error {
	resource, err := h.resources.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resourceResponse(resource)})
}

// ListTeams GET /teams.
func (h *ContentHandler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.org.ListTeams(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teams})
}

// ListSupporters GET /supporters.
func (h *ContentHandler) ListSupporters(c *fiber.Ctx) error {
	supporters, err := h.org.ListSupporters(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": supporters})
}

func activityResponse(activity *domain.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          activity.ID,
		Title:       activity.Title,
		Slug:        activity.Slug,
		Description: activity.Description,
		Body:        activity.Body,
		CoverImage:  activity.CoverImage,
		StartsAt:    activity.StartsAt,
		Published:   activity.Published,
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
	}
}

func activityResponses(activities []domain.Activity) []dto.ActivityResponse {
	items := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, activityResponse(&activities[i]))
	}
	return items
}

func galleryImageResponse(image *domain.GalleryImage) dto.GalleryImageResponse {
	return dto.GalleryImageResponse{
		ID:        image.ID,
		Title:     image.Title,
		FilePath:  image.FilePath,
		SortOrder: image.SortOrder,
		CreatedAt: image.CreatedAt,
	}
}

func resourceResponse(resource *domain.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Slug:        resource.Slug,
		Description: resource.Description,
		Category:    resource.Category,
		FilePath:    resource.FilePath,
		ExternalURL: resource.ExternalURL,
		CreatedAt:   resource.CreatedAt,
	}
}
