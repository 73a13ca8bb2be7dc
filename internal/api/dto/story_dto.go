package dto

import (
	"time"

	"github.com/youthbridge/portal-service/internal/domain"
)

// StorySubmitRequest payload for voice-of-change submissions.
type StorySubmitRequest struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
}

// StoryResponse is the story projection returned to clients.
type StoryResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	AuthorName  string             `json:"author_name"`
	Body        string             `json:"body"`
	Status      domain.StoryStatus `json:"status"`
	AdminNotes  *string            `json:"admin_notes,omitempty"`
	PublishedAt *time.Time         `json:"published_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// PublicStoryResponse hides review metadata on the public site.
type PublicStoryResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	AuthorName  string     `json:"author_name"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
