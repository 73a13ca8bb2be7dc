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

// ReviewService is the decision engine for application review: it enforces
// the Pending-only precondition, applies the terminal status plus review
// metadata, and on type-change approvals mutates the target user inside the
// same transaction as the application update.
type ReviewService struct {
	applications repository.ApplicationRepository
	users        repository.UserRepository
	tx           repository.TxManager
	numbers      *MembershipNumberGenerator
	dispatcher   events.Dispatcher
	now          func() time.Time
}

// ReviewDependencies bundles collaborators for the review service.
type ReviewDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	UserRepo        repository.UserRepository
	TxManager       repository.TxManager
	Dispatcher      events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(deps ReviewDependencies) *ReviewService {
	return &ReviewService{
		applications: deps.ApplicationRepo,
		users:        deps.UserRepo,
		tx:           deps.TxManager,
		// The generator scans through the pool-bound repository, outside
		// the approval transaction; see MembershipNumberGenerator.
		numbers:    NewMembershipNumberGenerator(deps.UserRepo.ListMembershipNumbers, MembershipNumberWidth),
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Approve transitions a pending application to Approved. For type-change
// applications it also updates the target user's classification, activates
// the account and assigns a membership number when the new classification
// carries one and none is assigned yet. The application and user writes
// commit together or not at all.
func (s *ReviewService) Approve(ctx context.Context, applicationID, adminID string, notes *string) (*domain.Application, error) {
	if applicationID == "" {
		return nil, apperrors.NewValidationError("application id required", nil)
	}
	if adminID == "" {
		return nil, apperrors.NewValidationError("reviewer id required", nil)
	}

	var (
		decided          *domain.Application
		membershipNumber *string
	)
	err := s.tx.RunAtomic(ctx, func(tx pgx.Tx) error {
		apps := s.applications.WithTx(tx)
		app, err := apps.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("application", map[string]any{"application_id": applicationID})
			}
			return apperrors.MapError(err)
		}
		if !app.Pending() {
			return apperrors.NewConflict("only pending applications can be approved", map[string]any{
				"application_id": applicationID,
				"status":         app.Status,
			})
		}

		now := s.now()
		app.Status = domain.ApplicationStatusApproved
		app.AdminNotes = normalizeNotes(notes)
		app.ReviewedBy = &adminID
		app.ProcessedAt = &now
		if err := apps.MarkDecided(ctx, app); err != nil {
			return apperrors.MapError(err)
		}

		if app.Kind == domain.ApplicationKindTypeChange {
			number, err := s.applyTypeChange(ctx, tx, app)
			if err != nil {
				return err
			}
			membershipNumber = number
		}

		decided = app
		return nil
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishDecision(ctx, decided, adminID, domain.ApplicationStatusApproved, membershipNumber)
	return decided, nil
}

// Reject transitions a pending application to Rejected. Notes are
// mandatory; the associated user is never touched.
func (s *ReviewService) Reject(ctx context.Context, applicationID, adminID, notes string) (*domain.Application, error) {
	if applicationID == "" {
		return nil, apperrors.NewValidationError("application id required", nil)
	}
	if adminID == "" {
		return nil, apperrors.NewValidationError("reviewer id required", nil)
	}
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("rejection requires admin notes", map[string]any{
			"admin_notes": "required",
		})
	}

	var decided *domain.Application
	err := s.tx.RunAtomic(ctx, func(tx pgx.Tx) error {
		apps := s.applications.WithTx(tx)
		app, err := apps.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("application", map[string]any{"application_id": applicationID})
			}
			return apperrors.MapError(err)
		}
		if !app.Pending() {
			return apperrors.NewConflict("only pending applications can be rejected", map[string]any{
				"application_id": applicationID,
				"status":         app.Status,
			})
		}

		now := s.now()
		app.Status = domain.ApplicationStatusRejected
		app.AdminNotes = &trimmed
		app.ReviewedBy = &adminID
		app.ProcessedAt = &now
		if err := apps.MarkDecided(ctx, app); err != nil {
			return apperrors.MapError(err)
		}

		decided = app
		return nil
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishDecision(ctx, decided, adminID, domain.ApplicationStatusRejected, nil)
	return decided, nil
}

// applyTypeChange mutates the target user of an approved type-change
// application. Runs inside the approval transaction.
func (s *ReviewService) applyTypeChange(ctx context.Context, tx pgx.Tx, app *domain.Application) (*string, error) {
	if app.RequestedUserType == nil {
		return nil, apperrors.NewValidationError("application has no requested user type", map[string]any{
			"application_id": app.ID,
		})
	}

	users := s.users.WithTx(tx)
	user, err := users.GetByID(ctx, app.SubmittedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": app.SubmittedBy})
		}
		return nil, apperrors.MapError(err)
	}

	user.UserType = *app.RequestedUserType
	user.Status = domain.UserStatusActive

	var assigned *string
	if domain.CarriesMembershipNumber(user.UserType) && !user.HasMembershipNumber() {
		number, err := s.numbers.Next(ctx, domain.MembershipPrefix(user.UserType))
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		user.MembershipNumber = &number
		assigned = &number
	}

	if err := users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return assigned, nil
}

func (s *ReviewService) publishDecision(ctx context.Context, app *domain.Application, adminID string, status domain.ApplicationStatus, membershipNumber *string) {
	if s.dispatcher == nil || app == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationDecided,
		SubjectID: app.ID,
		ActorID:   &adminID,
		Timestamp: s.now(),
		Payload: events.ApplicationDecidedPayload{
			Kind:             app.Kind,
			OldStatus:        domain.ApplicationStatusPending,
			NewStatus:        status,
			ReviewedBy:       adminID,
			MembershipNumber: membershipNumber,
		},
	})
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
