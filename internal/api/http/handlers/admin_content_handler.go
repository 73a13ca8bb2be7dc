package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/youthbridge/portal-service/internal/api/dto"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/service"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// AdminContentHandler manages admin CRUD for activities, gallery images
// and resources.
type AdminContentHandler struct {
	activities *service.ActivityService
	gallery    *service.GalleryService
	resources  *service.ResourceService
}

// NewAdminContentHandler constructs handler.
func NewAdminContentHandler(activities *service.ActivityService, gallery *service.GalleryService, resources *service.ResourceService) *AdminContentHandler {
	return &AdminContentHandler{activities: activities, gallery: gallery, resources: resources}
}

// ListActivities GET /admin/activities.
func (h *AdminContentHandler) ListActivities(c *fiber.Ctx) error {
	limit, offset := parsePaging(c)
	activities, err := h.activities.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponses(activities)})
}

// CreateActivity POST /admin/activities.
func (h *AdminContentHandler) CreateActivity(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	activity, err := h.activities.Create(c.Context(), activityInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": activityResponse(activity)})
}

// UpdateActivity PUT /admin/activities/:id.
func (h *AdminContentHandler) UpdateActivity(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	activity, err := h.activities.Update(c.Context(), c.Params("id"), activityInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponse(activity)})
}

// DeleteActivity DELETE /admin/activities/:id.
func (h *AdminContentHandler) DeleteActivity(c *fiber.Ctx) error {
	if err := h.activities.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UploadGalleryImage POST /admin/gallery. Multipart form with "file",
// "title" and optional "sort_order".
func (h *AdminContentHandler) UploadGalleryImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("missing required fields", map[string]any{"file": "required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable upload", nil)
	}
	defer file.Close()

	image, err := h.gallery.Upload(c.Context(), c.FormValue("title"), fileHeader.Filename, file, parseInt(c.FormValue("sort_order"), 0))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": galleryImageResponse(image)})
}

// UpdateGalleryImage PUT /admin/gallery/:id.
func (h *AdminContentHandler) UpdateGalleryImage(c *fiber.Ctx) error {
	var req struct {
		Title     string `json:"title"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	image, err := h.gallery.Update(c.Context(), c.Params("id"), req.Title, req.SortOrder)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": galleryImageResponse(image)})
}

// DeleteGalleryImage DELETE /admin/gallery/:id.
func (h *AdminContentHandler) DeleteGalleryImage(c *fiber.Ctx) error {
	if err := h.gallery.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateResource POST /admin/resources. Multipart form; either "file" or
// "external_url" is supplied.
func (h *AdminContentHandler) CreateResource(c *fiber.Ctx) error {
	input := service.ResourceInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    domain.ResourceCategory(strings.ToUpper(strings.TrimSpace(c.FormValue("category")))),
	}
	if url := c.FormValue("external_url"); url != "" {
		input.ExternalURL = &url
	}
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apperrors.NewValidationError("unreadable upload", nil)
		}
		defer file.Close()
		input.Filename = fileHeader.Filename
		input.File = file
	}

	resource, err := h.resources.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resourceResponse(resource)})
}

// UpdateResource PUT /admin/resources/:id.
func (h *AdminContentHandler) UpdateResource(c *fiber.Ctx) error {
	input := service.ResourceInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    domain.ResourceCategory(strings.ToUpper(strings.TrimSpace(c.FormValue("category")))),
	}
	if url := c.FormValue("external_url"); url != "" {
		input.ExternalURL = &url
	}
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apperrors.NewValidationError("unreadable upload", nil)
		}
		defer file.Close()
		input.Filename = fileHeader.Filename
		input.File = file
	}

	resource, err := h.resources.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resourceResponse(resource)})
}

// DeleteResource DELETE /admin/resources/:id.
func (h *AdminContentHandler) DeleteResource(c *fiber.Ctx) error {
	if err := h.resources.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func activityInput(req dto.ActivityRequest) service.ActivityInput {
	return service.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		CoverImage:  req.CoverImage,
		StartsAt:    req.StartsAt,
		Published:   req.Published,
	}
}
