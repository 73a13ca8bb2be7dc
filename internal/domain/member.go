package domain

import "time"

// Member is an entry in the membership registry kept by the admin panel.
// Registry members are tracked independently of site accounts; each gets a
// "MB"-prefixed membership ID at creation.
type Member struct {
	ID           string
	MembershipID string
	Name         string
	Email        *string
	Phone        *string
	JoinedAt     time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
