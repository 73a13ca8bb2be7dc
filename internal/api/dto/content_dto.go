package dto

import (
	"time"

	"github.com/youthbridge/portal-service/internal/domain"
)

// ActivityRequest payload for activity create/update.
type ActivityRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	CoverImage  *string    `json:"cover_image"`
	StartsAt    *time.Time `json:"starts_at"`
	Published   bool       `json:"published"`
}

// ActivityResponse is the activity projection returned to clients.
type ActivityResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GalleryImageResponse is the gallery projection returned to clients.
type GalleryImageResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceResponse is the resource projection returned to clients.
type ResourceResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Slug        string                  `json:"slug"`
	Description string                  `json:"description"`
	Category    domain.ResourceCategory `json:"category"`
	FilePath    *string                 `json:"file_path,omitempty"`
	ExternalURL *string                 `json:"external_url,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// TeamRequest payload for team create/update.
type TeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// TeamMemberRequest payload for team member create/update.
type TeamMemberRequest struct {
	Name      string  `json:"name"`
	RoleTitle string  `json:"role_title"`
	Photo     *string `json:"photo"`
	SortOrder int     `json:"sort_order"`
}

// SupporterRequest payload for supporter create/update.
type SupporterRequest struct {
	Name       string  `json:"name"`
	LogoPath   *string `json:"logo_path"`
	WebsiteURL *string `json:"website_url"`
	SortOrder  int     `json:"sort_order"`
}

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ContactMessageResponse is the inbox projection for admins.
type ContactMessageResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// MemberRequest payload for registry entries.
type MemberRequest struct {
	Name     string     `json:"name"`
	Email    *string    `json:"email"`
	Phone    *string    `json:"phone"`
	JoinedAt *time.Time `json:"joined_at"`
	Active   bool       `json:"active"`
}

// MemberResponse is the registry projection returned to admins.
type MemberResponse struct {
	ID           string    `json:"id"`
	MembershipID string    `json:"membership_id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
