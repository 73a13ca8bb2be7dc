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

// ContactService handles the public contact form and the admin inbox.
type ContactService struct {
	messages   repository.ContactRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// ContactDependencies bundles collaborators.
type ContactDependencies struct {
	ContactRepo repository.ContactRepository
	Dispatcher  events.Dispatcher
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// NewContactService constructs the service.
func NewContactService(deps ContactDependencies) *ContactService {
	return &ContactService{
		messages:   deps.ContactRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Submit stores a contact message.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		details["email"] = "valid email required"
	}
	if strings.TrimSpace(input.Body) == "" {
		details["body"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", details)
	}

	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Subject: strings.TrimSpace(input.Subject),
		Body:    input.Body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			SubjectID: msg.ID,
			Timestamp: s.now(),
			Payload: events.ContactReceivedPayload{
				Name:    msg.Name,
				Email:   msg.Email,
				Subject: msg.Subject,
			},
		})
	}
	return msg, nil
}

// Get returns one message.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact message", map[string]any{"message_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return msg, nil
}

// MarkRead stamps a message as handled.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if err := s.messages.MarkRead(ctx, id, s.now()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact message", map[string]any{"message_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// List returns inbox messages, optionally only unread ones.
func (s *ContactService) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, error) {
	msgs, err := s.messages.List(ctx, unreadOnly, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return msgs, nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact message", map[string]any{"message_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
