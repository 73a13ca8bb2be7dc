package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// UserService is the admin-facing account management surface.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// UserDependencies bundles collaborators.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	BcryptCost int
}

// UserUpdateInput carries admin-editable account fields. Nil fields are
// left unchanged.
type UserUpdateInput struct {
	Name     *string
	Role     *domain.UserRole
	Status   *domain.UserStatus
	Password *string
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{users: deps.UserRepo, bcryptCost: deps.BcryptCost}
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns accounts matching the filter.
func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	users, err := s.users.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Update applies admin edits to an account. User type transitions are not
// editable here; they go through the application workflow.
func (s *UserService) Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("name cannot be empty", map[string]any{"name": "required"})
		}
		user.Name = trimmed
	}
	if input.Role != nil {
		switch *input.Role {
		case domain.UserRoleAdmin, domain.UserRoleEditor, domain.UserRoleUser:
			user.Role = *input.Role
		default:
			return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": *input.Role})
		}
	}
	if input.Status != nil {
		switch *input.Status {
		case domain.UserStatusActive, domain.UserStatusInactive:
			user.Status = *input.Status
		default:
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
		}
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperrors.NewValidationError("invalid password", map[string]any{"password": "must be at least 8 characters"})
		}
		hashed, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		user.PasswordHash = hashed
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Deactivate marks an account inactive without deleting its history.
func (s *UserService) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	status := domain.UserStatusInactive
	return s.Update(ctx, id, UserUpdateInput{Status: &status})
}

// Delete removes an account outright.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
