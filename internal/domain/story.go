package domain

import "time"

// StoryStatus enumerates the voice-of-change review states. Unlike the
// application workflows, an approved story can be unpublished back to
// PENDING and reviewed again.
type StoryStatus string

const (
	StoryStatusPending  StoryStatus = "PENDING"
	StoryStatusApproved StoryStatus = "APPROVED"
	StoryStatusRejected StoryStatus = "REJECTED"
)

// Story is a voice-of-change submission from a young person. Approved
// stories appear on the public site until unpublished.
type Story struct {
	ID          string
	Title       string
	AuthorName  string
	Body        string
	Status      StoryStatus
	SubmittedBy *string
	AdminNotes  *string
	ReviewedBy  *string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
