package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// ApplicationService handles submission and listing of applications. The
// review decisions themselves live in ReviewService.
type ApplicationService struct {
	applications repository.ApplicationRepository
	dispatcher   events.Dispatcher
}

// ApplicationDependencies bundles collaborators.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	Dispatcher      events.Dispatcher
}

// FormApplicationInput is the opaque form payload of a volunteer or
// internship application. Only the contact fields are inspected; the rest
// travels to storage untouched.
type FormApplicationInput struct {
	FullName string
	Email    string
	Fields   map[string]any
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// SubmitForm stores a volunteer or internship application as Pending.
func (s *ApplicationService) SubmitForm(ctx context.Context, kind domain.ApplicationKind, submitterID string, input FormApplicationInput) (*domain.Application, error) {
	if kind != domain.ApplicationKindVolunteer && kind != domain.ApplicationKindInternship {
		return nil, apperrors.NewValidationError("unsupported application kind", map[string]any{"kind": kind})
	}

	details := map[string]any{}
	if strings.TrimSpace(input.FullName) == "" {
		details["full_name"] = "required"
	}
	if strings.TrimSpace(input.Email) == "" {
		details["email"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", details)
	}

	payload := map[string]any{
		"full_name": strings.TrimSpace(input.FullName),
		"email":     strings.TrimSpace(input.Email),
	}
	for key, value := range input.Fields {
		if _, reserved := payload[key]; !reserved {
			payload[key] = value
		}
	}

	app := &domain.Application{
		Kind:        kind,
		Status:      domain.ApplicationStatusPending,
		SubmittedBy: submitterID,
		Payload:     payload,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishSubmitted(ctx, app)
	return app, nil
}

// SubmitTypeChange stores a user-type-change request as Pending.
func (s *ApplicationService) SubmitTypeChange(ctx context.Context, submitterID string, requested domain.UserType) (*domain.Application, error) {
	if !domain.ValidUserType(requested) {
		return nil, apperrors.NewValidationError("invalid requested user type", map[string]any{
			"requested_user_type": requested,
		})
	}

	app := &domain.Application{
		Kind:              domain.ApplicationKindTypeChange,
		Status:            domain.ApplicationStatusPending,
		SubmittedBy:       submitterID,
		RequestedUserType: &requested,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishSubmitted(ctx, app)
	return app, nil
}

// Get returns one application for admin inspection.
func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", map[string]any{"application_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return app, nil
}

// ListMine returns the caller's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, userID string, limit, offset int) ([]domain.Application, error) {
	apps, err := s.applications.ListWithFilter(ctx, repository.ApplicationFilter{
		SubmittedBy: &userID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return apps, nil
}

// ListForAdmin returns applications matching the admin filter.
func (s *ApplicationService) ListForAdmin(ctx context.Context, filter repository.ApplicationFilter) ([]domain.Application, error) {
	apps, err := s.applications.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return apps, nil
}

// PendingCount reports how many applications of a kind await review.
func (s *ApplicationService) PendingCount(ctx context.Context, kind domain.ApplicationKind) (int64, error) {
	count, err := s.applications.CountPending(ctx, kind)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return count, nil
}

// Purge removes an application regardless of status. Administrative
// delete; no state-machine constraints apply.
func (s *ApplicationService) Purge(ctx context.Context, id string) error {
	if err := s.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("application", map[string]any{"application_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *ApplicationService) publishSubmitted(ctx context.Context, app *domain.Application) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationSubmitted,
		SubjectID: app.ID,
		ActorID:   &app.SubmittedBy,
		Timestamp: time.Now(),
		Payload: events.ApplicationSubmittedPayload{
			Kind:              app.Kind,
			SubmittedBy:       app.SubmittedBy,
			RequestedUserType: app.RequestedUserType,
		},
	})
}
