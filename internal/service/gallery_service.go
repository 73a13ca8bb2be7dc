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

// GalleryService manages the public photo gallery. Image files live in the
// file store; records carry the stored path.
type GalleryService struct {
	gallery repository.GalleryRepository
	files   storage.FileStore
	logger  *zap.Logger
}

// GalleryDependencies bundles collaborators.
type GalleryDependencies struct {
	GalleryRepo repository.GalleryRepository
	Files       storage.FileStore
	Logger      *zap.Logger
}

// NewGalleryService constructs the service.
func NewGalleryService(deps GalleryDependencies) *GalleryService {
	return &GalleryService{gallery: deps.GalleryRepo, files: deps.Files, logger: deps.Logger}
}

// Upload stores the image file and creates its gallery record. On a failed
// record insert the stored file is cleaned up again.
func (s *GalleryService) Upload(ctx context.Context, title, filename string, r io.Reader, sortOrder int) (*domain.GalleryImage, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"title": "required"})
	}
	if r == nil {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"file": "required"})
	}

	path, err := s.files.Store(ctx, "gallery", filename, r)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	image := &domain.GalleryImage{
		Title:     strings.TrimSpace(title),
		FilePath:  path,
		SortOrder: sortOrder,
	}
	if err := s.gallery.Create(ctx, image); err != nil {
		if cleanupErr := s.files.Delete(ctx, path); cleanupErr != nil {
			s.logger.Warn("orphaned gallery file", zap.String("path", path), zap.Error(cleanupErr))
		}
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// Update edits title and ordering of an existing image.
func (s *GalleryService) Update(ctx context.Context, id, title string, sortOrder int) (*domain.GalleryImage, error) {
	image, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"title": "required"})
	}
	image.Title = strings.TrimSpace(title)
	image.SortOrder = sortOrder
	if err := s.gallery.Update(ctx, image); err != nil {
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// Get returns one image record.
func (s *GalleryService) Get(ctx context.Context, id string) (*domain.GalleryImage, error) {
	image, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("gallery image", map[string]any{"image_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// List returns all images in display order.
func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryImage, error) {
	images, err := s.gallery.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return images, nil
}

// Delete removes the record and its file.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gallery.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.files.Delete(ctx, image.FilePath); err != nil {
		s.logger.Warn("orphaned gallery file", zap.String("path", image.FilePath), zap.Error(err))
	}
	return nil
}
