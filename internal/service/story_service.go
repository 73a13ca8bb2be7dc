package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/cache"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

const storiesCacheKey = "stories:published"

// StoryService manages voice-of-change stories: public submission, review
// and the unpublish transition that sends an approved story back to the
// review queue.
type StoryService struct {
	stories    repository.StoryRepository
	dispatcher events.Dispatcher
	cache      *cache.ContentCache
	now        func() time.Time
}

// StoryDependencies bundles collaborators.
type StoryDependencies struct {
	StoryRepo  repository.StoryRepository
	Dispatcher events.Dispatcher
	Cache      *cache.ContentCache
}

// StoryInput carries a story submission.
type StoryInput struct {
	Title      string
	AuthorName string
	Body       string
}

// NewStoryService constructs the service.
func NewStoryService(deps StoryDependencies) *StoryService {
	return &StoryService{
		stories:    deps.StoryRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		now:        time.Now,
	}
}

// Submit stores a new story as Pending. SubmittedBy is nil for anonymous
// public submissions.
func (s *StoryService) Submit(ctx context.Context, submittedBy *string, input StoryInput) (*domain.Story, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(input.AuthorName) == "" {
		details["author_name"] = "required"
	}
	if strings.TrimSpace(input.Body) == "" {
		details["body"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", details)
	}

	story := &domain.Story{
		Title:       strings.TrimSpace(input.Title),
		AuthorName:  strings.TrimSpace(input.AuthorName),
		Body:        input.Body,
		Status:      domain.StoryStatusPending,
		SubmittedBy: submittedBy,
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventStorySubmitted, story, submittedBy, "", domain.StoryStatusPending)
	return story, nil
}

// Approve publishes a pending story.
func (s *StoryService) Approve(ctx context.Context, storyID, adminID string, notes *string) (*domain.Story, error) {
	story, err := s.getForReview(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.Status != domain.StoryStatusPending {
		return nil, apperrors.NewConflict("only pending stories can be approved", map[string]any{
			"story_id": storyID,
			"status":   story.Status,
		})
	}

	now := s.now()
	old := story.Status
	story.Status = domain.StoryStatusApproved
	story.AdminNotes = normalizeNotes(notes)
	story.ReviewedBy = &adminID
	story.PublishedAt = &now
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidatePublished(ctx)
	s.publish(ctx, events.EventStoryPublished, story, &adminID, old, story.Status)
	return story, nil
}

// Reject declines a pending story. Notes are mandatory.
func (s *StoryService) Reject(ctx context.Context, storyID, adminID, notes string) (*domain.Story, error) {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("rejection requires admin notes", map[string]any{
			"admin_notes": "required",
		})
	}

	story, err := s.getForReview(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.Status != domain.StoryStatusPending {
		return nil, apperrors.NewConflict("only pending stories can be rejected", map[string]any{
			"story_id": storyID,
			"status":   story.Status,
		})
	}

	story.Status = domain.StoryStatusRejected
	story.AdminNotes = &trimmed
	story.ReviewedBy = &adminID
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}
	return story, nil
}

// Unpublish pulls an approved story off the public site and returns it to
// the review queue: status back to Pending, publication timestamp and
// review metadata cleared.
func (s *StoryService) Unpublish(ctx context.Context, storyID, adminID string) (*domain.Story, error) {
	story, err := s.getForReview(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.Status != domain.StoryStatusApproved {
		return nil, apperrors.NewConflict("only approved stories can be unpublished", map[string]any{
			"story_id": storyID,
			"status":   story.Status,
		})
	}

	old := story.Status
	story.Status = domain.StoryStatusPending
	story.PublishedAt = nil
	story.AdminNotes = nil
	story.ReviewedBy = nil
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidatePublished(ctx)
	s.publish(ctx, events.EventStoryUnpublished, story, &adminID, old, story.Status)
	return story, nil
}

// ListPublished returns approved stories for the public site, served from
// cache when available.
func (s *StoryService) ListPublished(ctx context.Context, limit, offset int) ([]domain.Story, error) {
	filter := repository.StoryFilter{
		Statuses: []domain.StoryStatus{domain.StoryStatusApproved},
		Limit:    limit,
		Offset:   offset,
	}

	cacheable := s.cache != nil && offset == 0
	if cacheable {
		var cached []domain.Story
		if err := s.cache.GetJSON(ctx, storiesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	stories, err := s.stories.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if cacheable {
		s.cache.SetJSON(ctx, storiesCacheKey, stories)
	}
	return stories, nil
}

// ListForAdmin returns stories for the review queue.
func (s *StoryService) ListForAdmin(ctx context.Context, filter repository.StoryFilter) ([]domain.Story, error) {
	stories, err := s.stories.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stories, nil
}

// Get returns one story.
func (s *StoryService) Get(ctx context.Context, id string) (*domain.Story, error) {
	return s.getForReview(ctx, id)
}

// Delete removes a story outright.
func (s *StoryService) Delete(ctx context.Context, id string) error {
	if err := s.stories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("story", map[string]any{"story_id": id})
		}
		return apperrors.MapError(err)
	}
	s.invalidatePublished(ctx)
	return nil
}

func (s *StoryService) getForReview(ctx context.Context, id string) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("story", map[string]any{"story_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return story, nil
}

func (s *StoryService) invalidatePublished(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, storiesCacheKey)
	}
}

func (s *StoryService) publish(ctx context.Context, eventType events.EventType, story *domain.Story, actorID *string, old, next domain.StoryStatus) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: story.ID,
		ActorID:   actorID,
		Timestamp: s.now(),
		Payload: events.StoryStatusPayload{
			OldStatus: old,
			NewStatus: next,
		},
	})
}
