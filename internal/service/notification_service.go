package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
)

// Notification is a queued outbound message for the admin team or a user.
type Notification struct {
	Subject string
	Body    string
	Event   events.Event
}

// NotificationSink receives queued notifications; the worker drains it.
type NotificationSink interface {
	Enqueue(n Notification)
}

// NotificationService turns domain events into notifications. Delivery is
// asynchronous; dropping a notification never fails the operation that
// triggered it.
type NotificationService struct {
	sink   NotificationSink
	logger *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(sink NotificationSink, logger *zap.Logger) *NotificationService {
	return &NotificationService{sink: sink, logger: logger}
}

// Register subscribes the service to the event types it cares about.
func (s *NotificationService) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventApplicationSubmitted, s.onApplicationSubmitted)
	dispatcher.Subscribe(events.EventApplicationDecided, s.onApplicationDecided)
	dispatcher.Subscribe(events.EventStorySubmitted, s.onStorySubmitted)
	dispatcher.Subscribe(events.EventContactReceived, s.onContactReceived)
}

func (s *NotificationService) onApplicationSubmitted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationSubmittedPayload)
	if !ok {
		return nil
	}
	s.sink.Enqueue(Notification{
		Subject: "New application received",
		Body:    fmt.Sprintf("A %s application is awaiting review.", payload.Kind),
		Event:   event,
	})
	return nil
}

func (s *NotificationService) onApplicationDecided(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationDecidedPayload)
	if !ok {
		return nil
	}
	body := fmt.Sprintf("Your %s application was %s.", payload.Kind, statusWord(payload.NewStatus))
	if payload.MembershipNumber != nil {
		body += fmt.Sprintf(" Your membership number is %s.", *payload.MembershipNumber)
	}
	s.sink.Enqueue(Notification{
		Subject: "Application reviewed",
		Body:    body,
		Event:   event,
	})
	return nil
}

func (s *NotificationService) onStorySubmitted(_ context.Context, event events.Event) error {
	s.sink.Enqueue(Notification{
		Subject: "New story submitted",
		Body:    "A voice-of-change story is awaiting review.",
		Event:   event,
	})
	return nil
}

func (s *NotificationService) onContactReceived(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactReceivedPayload)
	if !ok {
		return nil
	}
	s.sink.Enqueue(Notification{
		Subject: "New contact message",
		Body:    fmt.Sprintf("%s <%s> wrote: %s", payload.Name, payload.Email, payload.Subject),
		Event:   event,
	})
	return nil
}

func statusWord(status domain.ApplicationStatus) string {
	switch status {
	case domain.ApplicationStatusApproved:
		return "approved"
	case domain.ApplicationStatusRejected:
		return "rejected"
	default:
		return string(status)
	}
}
