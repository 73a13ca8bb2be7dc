package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/storage"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// ResourceService manages downloadable resources and external links.
type ResourceService struct {
	resources repository.ResourceRepository
	files     storage.FileStore
	logger    *zap.Logger
}

// ResourceDependencies bundles collaborators.
type ResourceDependencies struct {
	ResourceRepo repository.ResourceRepository
	Files        storage.FileStore
	Logger       *zap.Logger
}

// ResourceInput carries admin-editable resource fields. Exactly one of
// File or ExternalURL must be supplied on create.
type ResourceInput struct {
	Title       string
	Description string
	Category    domain.ResourceCategory
	ExternalURL *string
	Filename    string
	File        io.Reader
}

// NewResourceService constructs the service.
func NewResourceService(deps ResourceDependencies) *ResourceService {
	return &ResourceService{resources: deps.ResourceRepo, files: deps.Files, logger: deps.Logger}
}

func validResourceCategory(c domain.ResourceCategory) bool {
	switch c {
	case domain.ResourceCategoryGuide, domain.ResourceCategoryReport,
		domain.ResourceCategoryToolkit, domain.ResourceCategoryExternal:
		return true
	}
	return false
}

// Create stores a new resource, uploading its file when one is attached.
func (s *ResourceService) Create(ctx context.Context, input ResourceInput) (*domain.Resource, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if !validResourceCategory(input.Category) {
		details["category"] = "invalid"
	}
	hasFile := input.File != nil
	hasURL := input.ExternalURL != nil && strings.TrimSpace(*input.ExternalURL) != ""
	if hasFile == hasURL {
		details["source"] = "exactly one of file or external_url is required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid resource", details)
	}

	slug, err := uniqueSlug(ctx, slugify(input.Title), s.resources.SlugExists)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	resource := &domain.Resource{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Category:    input.Category,
		ExternalURL: input.ExternalURL,
	}
	if hasFile {
		path, err := s.files.Store(ctx, "resources", input.Filename, input.File)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		resource.FilePath = &path
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		if resource.FilePath != nil {
			if cleanupErr := s.files.Delete(ctx, *resource.FilePath); cleanupErr != nil {
				s.logger.Warn("orphaned resource file", zap.String("path", *resource.FilePath), zap.Error(cleanupErr))
			}
		}
		return nil, apperrors.MapError(err)
	}
	return resource, nil
}

// Update edits metadata. Replacing the file swaps the stored copy.
func (s *ResourceService) Update(ctx context.Context, id string, input ResourceInput) (*domain.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("invalid resource", map[string]any{"title": "required"})
	}
	if !validResourceCategory(input.Category) {
		return nil, apperrors.NewValidationError("invalid resource", map[string]any{"category": "invalid"})
	}

	resource.Title = strings.TrimSpace(input.Title)
	resource.Description = input.Description
	resource.Category = input.Category
	if input.ExternalURL != nil {
		resource.ExternalURL = input.ExternalURL
	}

	var oldPath *string
	if input.File != nil {
		path, err := s.files.Store(ctx, "resources", input.Filename, input.File)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		oldPath = resource.FilePath
		resource.FilePath = &path
	}

	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, apperrors.MapError(err)
	}
	if oldPath != nil {
		if err := s.files.Delete(ctx, *oldPath); err != nil {
			s.logger.Warn("orphaned resource file", zap.String("path", *oldPath), zap.Error(err))
		}
	}
	return resource, nil
}

// Get returns one resource by id.
func (s *ResourceService) Get(ctx context.Context, id string) (*domain.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resource", map[string]any{"resource_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return resource, nil
}

// GetBySlug resolves a public resource page.
func (s *ResourceService) GetBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	resource, err := s.resources.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resource", map[string]any{"slug": slug})
		}
		return nil, apperrors.MapError(err)
	}
	return resource, nil
}

// List returns resources, optionally narrowed to a category.
func (s *ResourceService) List(ctx context.Context, category *domain.ResourceCategory) ([]domain.Resource, error) {
	if category != nil && !validResourceCategory(*category) {
		return nil, apperrors.NewValidationError("invalid category", map[string]any{"category": *category})
	}
	resources, err := s.resources.List(ctx, category)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return resources, nil
}

// Delete removes the record and any stored file.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resources.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if resource.FilePath != nil {
		if err := s.files.Delete(ctx, *resource.FilePath); err != nil {
			s.logger.Warn("orphaned resource file", zap.String("path", *resource.FilePath), zap.Error(err))
		}
	}
	return nil
}
