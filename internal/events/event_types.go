package events

import (
	"time"

	"github.com/youthbridge/portal-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationSubmitted EventType = "application_submitted"
	EventApplicationDecided   EventType = "application_decided"
	EventStorySubmitted       EventType = "story_submitted"
	EventStoryPublished       EventType = "story_published"
	EventStoryUnpublished     EventType = "story_unpublished"
	EventContactReceived      EventType = "contact_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   *string     `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	Kind              domain.ApplicationKind `json:"kind"`
	SubmittedBy       string                 `json:"submitted_by"`
	RequestedUserType *domain.UserType       `json:"requested_user_type,omitempty"`
}

// ApplicationDecidedPayload payload.
type ApplicationDecidedPayload struct {
	Kind             domain.ApplicationKind   `json:"kind"`
	OldStatus        domain.ApplicationStatus `json:"old_status"`
	NewStatus        domain.ApplicationStatus `json:"new_status"`
	ReviewedBy       string                   `json:"reviewed_by"`
	MembershipNumber *string                  `json:"membership_number,omitempty"`
}

// StoryStatusPayload payload for story review events.
type StoryStatusPayload struct {
	OldStatus domain.StoryStatus `json:"old_status"`
	NewStatus domain.StoryStatus `json:"new_status"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}
