package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/domain"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepo) {
	t.Helper()
	users := new(MockUserRepo)
	svc := NewAuthService(AuthDependencies{
		UserRepo:     users,
		TokenManager: auth.NewTokenManager("test-secret", 60),
		BcryptCost:   bcrypt.MinCost,
	})
	return svc, users
}

func TestAuthService_Register(t *testing.T) {
	svc, users := newAuthFixture(t)
	users.On("GetByEmail", mock.Anything, "jordan@example.org").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jordan",
		Email:    " Jordan@Example.org ",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "jordan@example.org", result.User.Email)
	assert.Equal(t, domain.UserRoleUser, result.User.Role)
	assert.Equal(t, domain.UserTypeGuest, result.User.UserType)
	assert.Equal(t, domain.UserStatusActive, result.User.Status)
	assert.NoError(t, auth.ComparePassword(result.User.PasswordHash, "hunter2hunter2"))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, users := newAuthFixture(t)
	users.On("GetByEmail", mock.Anything, "jordan@example.org").Return(&domain.User{ID: "u-1"}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jordan",
		Email:    "jordan@example.org",
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "password")
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, users := newAuthFixture(t)
	hashed, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "jordan@example.org").Return(&domain.User{
		ID:           "u-1",
		Email:        "jordan@example.org",
		PasswordHash: hashed,
		Status:       domain.UserStatusActive,
	}, nil)

	_, err = svc.Login(context.Background(), "jordan@example.org", "battery-staple")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	svc, users := newAuthFixture(t)
	hashed, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "jordan@example.org").Return(&domain.User{
		ID:           "u-1",
		Email:        "jordan@example.org",
		PasswordHash: hashed,
		Status:       domain.UserStatusInactive,
	}, nil)

	_, err = svc.Login(context.Background(), "jordan@example.org", "correct-horse")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
}
