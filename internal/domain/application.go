package domain

import "time"

// ApplicationKind distinguishes the three review workflows.
type ApplicationKind string

const (
	ApplicationKindVolunteer  ApplicationKind = "VOLUNTEER"
	ApplicationKindInternship ApplicationKind = "INTERNSHIP"
	ApplicationKindTypeChange ApplicationKind = "TYPE_CHANGE"
)

// ApplicationStatus enumerates review lifecycle states. Approved and
// Rejected are terminal for every kind.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Application is a pending request awaiting administrative review: a
// volunteer application, an internship application or a user-type-change
// request. The three variants are structurally identical; the form fields
// of the volunteer/internship variants travel as an opaque payload.
//
// While Status is PENDING, ReviewedBy and ProcessedAt are both nil; any
// decided status implies both are set.
type Application struct {
	ID                string
	Kind              ApplicationKind
	Status            ApplicationStatus
	SubmittedBy       string
	RequestedUserType *UserType
	Payload           map[string]any
	AdminNotes        *string
	ReviewedBy        *string
	ProcessedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Pending reports whether the application still awaits a decision.
func (a *Application) Pending() bool {
	return a.Status == ApplicationStatusPending
}
