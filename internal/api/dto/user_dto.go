package dto

import (
	"time"

	"github.com/youthbridge/portal-service/internal/domain"
)

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// UserSummary is the account projection returned to clients. The password
// hash never leaves the service layer.
type UserSummary struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Role             domain.UserRole   `json:"role"`
	UserType         domain.UserType   `json:"user_type"`
	Status           domain.UserStatus `json:"status"`
	MembershipNumber *string           `json:"membership_number,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// UserUpdateRequest payload for admin account edits.
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}
