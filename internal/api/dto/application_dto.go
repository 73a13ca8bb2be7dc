package dto

import (
	"time"

	"github.com/youthbridge/portal-service/internal/domain"
)

// FormApplicationRequest payload for volunteer and internship forms. Extra
// fields ride along unvalidated.
type FormApplicationRequest struct {
	FullName string         `json:"full_name"`
	Email    string         `json:"email"`
	Fields   map[string]any `json:"fields"`
}

// TypeChangeRequest payload for user-type-change applications.
type TypeChangeRequest struct {
	RequestedUserType string `json:"requested_user_type"`
}

// ReviewRequest payload for approve/reject decisions.
type ReviewRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

// ApplicationResponse is the application projection returned to clients.
type ApplicationResponse struct {
	ID                string                   `json:"id"`
	Kind              domain.ApplicationKind   `json:"kind"`
	Status            domain.ApplicationStatus `json:"status"`
	SubmittedBy       string                   `json:"submitted_by"`
	RequestedUserType *domain.UserType         `json:"requested_user_type,omitempty"`
	Payload           map[string]any           `json:"payload,omitempty"`
	AdminNotes        *string                  `json:"admin_notes,omitempty"`
	ReviewedBy        *string                  `json:"reviewed_by,omitempty"`
	ProcessedAt       *time.Time               `json:"processed_at,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}
