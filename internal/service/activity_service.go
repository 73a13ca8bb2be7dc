package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/cache"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

const activitiesCacheKey = "activities:published"

// ActivityService manages events and programs shown on the public site.
type ActivityService struct {
	activities repository.ActivityRepository
	cache      *cache.ContentCache
}

// ActivityDependencies bundles collaborators.
type ActivityDependencies struct {
	ActivityRepo repository.ActivityRepository
	Cache        *cache.ContentCache
}

// ActivityInput carries admin-editable activity fields.
type ActivityInput struct {
	Title       string
	Description string
	Body        string
	CoverImage  *string
	StartsAt    *time.Time
	Published   bool
}

// NewActivityService constructs the service.
func NewActivityService(deps ActivityDependencies) *ActivityService {
	return &ActivityService{activities: deps.ActivityRepo, cache: deps.Cache}
}

// Create stores a new activity with a slug derived from the title; slug
// collisions get a numeric suffix.
func (s *ActivityService) Create(ctx context.Context, input ActivityInput) (*domain.Activity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"title": "required"})
	}

	slug, err := uniqueSlug(ctx, slugify(input.Title), s.activities.SlugExists)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	activity := &domain.Activity{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Body:        input.Body,
		CoverImage:  input.CoverImage,
		StartsAt:    input.StartsAt,
		Published:   input.Published,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx)
	return activity, nil
}

// Update applies admin edits. The slug only changes when the title does.
func (s *ActivityService) Update(ctx context.Context, id string, input ActivityInput) (*domain.Activity, error) {
	activity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"title": "required"})
	}

	title := strings.TrimSpace(input.Title)
	if title != activity.Title {
		base := slugify(title)
		if base != activity.Slug {
			slug, err := uniqueSlug(ctx, base, s.activities.SlugExists)
			if err != nil {
				return nil, apperrors.MapError(err)
			}
			activity.Slug = slug
		}
	}

	activity.Title = title
	activity.Description = input.Description
	activity.Body = input.Body
	activity.CoverImage = input.CoverImage
	activity.StartsAt = input.StartsAt
	activity.Published = input.Published

	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx)
	return activity, nil
}

// Get returns one activity by id.
func (s *ActivityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("activity", map[string]any{"activity_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return activity, nil
}

// GetBySlug resolves a public page. Unpublished activities stay hidden.
func (s *ActivityService) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	activity, err := s.activities.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("activity", map[string]any{"slug": slug})
		}
		return nil, apperrors.MapError(err)
	}
	if !activity.Published {
		return nil, apperrors.NewNotFound("activity", map[string]any{"slug": slug})
	}
	return activity, nil
}

// ListPublished serves the public listing, cached when possible.
func (s *ActivityService) ListPublished(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	cacheable := s.cache != nil && offset == 0
	if cacheable {
		var cached []domain.Activity
		if err := s.cache.GetJSON(ctx, activitiesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	activities, err := s.activities.List(ctx, true, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if cacheable {
		s.cache.SetJSON(ctx, activitiesCacheKey, activities)
	}
	return activities, nil
}

// ListAll serves the admin listing including drafts.
func (s *ActivityService) ListAll(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	activities, err := s.activities.List(ctx, false, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return activities, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("activity", map[string]any{"activity_id": id})
		}
		return apperrors.MapError(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ActivityService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, activitiesCacheKey)
	}
}
