package domain

import "time"

// UserRole enumerates authorization roles.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleEditor UserRole = "EDITOR"
	UserRoleUser   UserRole = "USER"
)

// UserType classifies a user's relationship with the organization. It is
// mutable only through the application approval path or a direct
// administrative edit.
type UserType string

const (
	UserTypeGuest     UserType = "GUEST"
	UserTypeMember    UserType = "MEMBER"
	UserTypeVolunteer UserType = "VOLUNTEER"
	UserTypeIntern    UserType = "INTERN"
	UserTypeEmployee  UserType = "EMPLOYEE"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// User is the domain model for accounts: registered visitors, members,
// volunteers, interns and administrators alike.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Role             UserRole
	UserType         UserType
	Status           UserStatus
	MembershipNumber *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasMembershipNumber reports whether a membership number is already assigned.
func (u *User) HasMembershipNumber() bool {
	return u.MembershipNumber != nil && *u.MembershipNumber != ""
}

// CarriesMembershipNumber reports whether the classification qualifies for a
// generated membership number.
func CarriesMembershipNumber(t UserType) bool {
	switch t {
	case UserTypeMember, UserTypeVolunteer, UserTypeIntern, UserTypeEmployee:
		return true
	}
	return false
}

// MembershipPrefix maps a classification to its identifier prefix.
func MembershipPrefix(t UserType) string {
	switch t {
	case UserTypeMember:
		return "M"
	case UserTypeVolunteer:
		return "V"
	case UserTypeIntern:
		return "I"
	case UserTypeEmployee:
		return "E"
	}
	return ""
}

// ValidUserType reports whether t belongs to the closed classification set
// accepted on type-change applications.
func ValidUserType(t UserType) bool {
	switch t {
	case UserTypeMember, UserTypeVolunteer, UserTypeIntern, UserTypeEmployee:
		return true
	}
	return false
}
