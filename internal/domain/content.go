package domain

import "time"

// Activity is an organization event or program shown on the public site.
type Activity struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Body        string
	CoverImage  *string
	StartsAt    *time.Time
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GalleryImage is an uploaded photo displayed in the public gallery.
type GalleryImage struct {
	ID        string
	Title     string
	FilePath  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResourceCategory groups downloadable resources.
type ResourceCategory string

const (
	ResourceCategoryGuide    ResourceCategory = "GUIDE"
	ResourceCategoryReport   ResourceCategory = "REPORT"
	ResourceCategoryToolkit  ResourceCategory = "TOOLKIT"
	ResourceCategoryExternal ResourceCategory = "EXTERNAL"
)

// Resource is a downloadable file or external link offered on the site.
type Resource struct {
	ID          string
	Title       string
	Slug        string
	Description string
	FilePath    *string
	ExternalURL *string
	Category    ResourceCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Team is a named group presented on the team page.
type Team struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember is a person listed under a team.
type TeamMember struct {
	ID        string
	TeamID    string
	Name      string
	RoleTitle string
	Photo     *string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supporter is a partner or sponsor whose logo appears on the site.
type Supporter struct {
	ID         string
	Name       string
	LogoPath   *string
	WebsiteURL *string
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}
