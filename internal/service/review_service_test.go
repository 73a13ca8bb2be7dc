package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func newReviewFixture(t *testing.T) (*ReviewService, *MockApplicationRepo, *MockUserRepo, *recordingDispatcher) {
	t.Helper()
	apps := new(MockApplicationRepo)
	users := new(MockUserRepo)
	dispatcher := &recordingDispatcher{}
	svc := NewReviewService(ReviewDependencies{
		ApplicationRepo: apps,
		UserRepo:        users,
		TxManager:       fakeTxManager{},
		Dispatcher:      dispatcher,
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, apps, users, dispatcher
}

func pendingApplication(kind domain.ApplicationKind) *domain.Application {
	return &domain.Application{
		ID:          "app-1",
		Kind:        kind,
		Status:      domain.ApplicationStatusPending,
		SubmittedBy: "user-1",
	}
}

func TestReviewService_ApproveVolunteer(t *testing.T) {
	svc, apps, users, dispatcher := newReviewFixture(t)
	app := pendingApplication(domain.ApplicationKindVolunteer)
	notes := "welcome aboard"

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)
	apps.On("MarkDecided", mock.Anything, app).Return(nil)

	decided, err := svc.Approve(context.Background(), "app-1", "admin-1", &notes)
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationStatusApproved, decided.Status)
	require.NotNil(t, decided.AdminNotes)
	assert.Equal(t, "welcome aboard", *decided.AdminNotes)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, "admin-1", *decided.ReviewedBy)
	require.NotNil(t, decided.ProcessedAt)
	assert.Equal(t, svc.now(), *decided.ProcessedAt)

	// Volunteer approvals never touch the account.
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventApplicationDecided, published[0].Type)
}

func TestReviewService_ApproveAlreadyDecided(t *testing.T) {
	svc, apps, _, dispatcher := newReviewFixture(t)
	app := pendingApplication(domain.ApplicationKindVolunteer)
	app.Status = domain.ApplicationStatusApproved

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)

	_, err := svc.Approve(context.Background(), "app-1", "admin-1", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))

	apps.AssertNotCalled(t, "MarkDecided", mock.Anything, mock.Anything)
	assert.Empty(t, dispatcher.events())
	// The record keeps its terminal state.
	assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
	assert.Nil(t, app.ReviewedBy)
}

func TestReviewService_ApproveNotFound(t *testing.T) {
	svc, apps, _, _ := newReviewFixture(t)
	apps.On("GetByIDForUpdate", mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	_, err := svc.Approve(context.Background(), "missing", "admin-1", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestReviewService_ApproveTypeChangeAssignsMembershipNumber(t *testing.T) {
	svc, apps, users, dispatcher := newReviewFixture(t)
	requested := domain.UserTypeVolunteer
	app := pendingApplication(domain.ApplicationKindTypeChange)
	app.RequestedUserType = &requested

	user := &domain.User{
		ID:       "user-1",
		UserType: domain.UserTypeGuest,
		Status:   domain.UserStatusInactive,
	}

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)
	apps.On("MarkDecided", mock.Anything, app).Return(nil)
	users.On("GetByID", mock.Anything, "user-1").Return(user, nil)
	users.On("ListMembershipNumbers", mock.Anything, "V").Return([]string{"V000041", "V000042"}, nil)
	users.On("Update", mock.Anything, user).Return(nil)

	decided, err := svc.Approve(context.Background(), "app-1", "admin-1", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationStatusApproved, decided.Status)
	assert.Equal(t, domain.UserTypeVolunteer, user.UserType)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	require.NotNil(t, user.MembershipNumber)
	assert.Equal(t, "V000043", *user.MembershipNumber)

	published := dispatcher.events()
	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.ApplicationDecidedPayload)
	require.True(t, ok)
	require.NotNil(t, payload.MembershipNumber)
	assert.Equal(t, "V000043", *payload.MembershipNumber)
}

func TestReviewService_ApproveTypeChangeKeepsExistingNumber(t *testing.T) {
	svc, apps, users, _ := newReviewFixture(t)
	requested := domain.UserTypeMember
	app := pendingApplication(domain.ApplicationKindTypeChange)
	app.RequestedUserType = &requested

	existing := "M000010"
	user := &domain.User{
		ID:               "user-1",
		UserType:         domain.UserTypeVolunteer,
		Status:           domain.UserStatusActive,
		MembershipNumber: &existing,
	}

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)
	apps.On("MarkDecided", mock.Anything, app).Return(nil)
	users.On("GetByID", mock.Anything, "user-1").Return(user, nil)
	users.On("Update", mock.Anything, user).Return(nil)

	_, err := svc.Approve(context.Background(), "app-1", "admin-1", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.UserTypeMember, user.UserType)
	assert.Equal(t, "M000010", *user.MembershipNumber)
	users.AssertNotCalled(t, "ListMembershipNumbers", mock.Anything, mock.Anything)
}

func TestReviewService_ApproveTypeChangeUserWriteFails(t *testing.T) {
	svc, apps, users, dispatcher := newReviewFixture(t)
	requested := domain.UserTypeIntern
	app := pendingApplication(domain.ApplicationKindTypeChange)
	app.RequestedUserType = &requested

	user := &domain.User{ID: "user-1", UserType: domain.UserTypeGuest}

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)
	apps.On("MarkDecided", mock.Anything, app).Return(nil)
	users.On("GetByID", mock.Anything, "user-1").Return(user, nil)
	users.On("ListMembershipNumbers", mock.Anything, "I").Return([]string{}, nil)
	users.On("Update", mock.Anything, user).Return(errors.New("connection reset"))

	_, err := svc.Approve(context.Background(), "app-1", "admin-1", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "PERSISTENCE_FAILURE"))
	// The transactional function failed, so nothing may be announced.
	assert.Empty(t, dispatcher.events())
}

func TestReviewService_RejectRequiresNotes(t *testing.T) {
	svc, apps, _, _ := newReviewFixture(t)

	_, err := svc.Reject(context.Background(), "app-1", "admin-1", "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	apps.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
}

func TestReviewService_RejectPending(t *testing.T) {
	svc, apps, users, dispatcher := newReviewFixture(t)
	requested := domain.UserTypeVolunteer
	app := pendingApplication(domain.ApplicationKindTypeChange)
	app.RequestedUserType = &requested

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)
	apps.On("MarkDecided", mock.Anything, app).Return(nil)

	decided, err := svc.Reject(context.Background(), "app-1", "admin-1", "incomplete details")
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationStatusRejected, decided.Status)
	require.NotNil(t, decided.AdminNotes)
	assert.Equal(t, "incomplete details", *decided.AdminNotes)
	require.NotNil(t, decided.ProcessedAt)

	// Rejection never touches the account, even for type changes.
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	published := dispatcher.events()
	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.ApplicationDecidedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationStatusRejected, payload.NewStatus)
	assert.Nil(t, payload.MembershipNumber)
}

func TestReviewService_RejectAlreadyDecided(t *testing.T) {
	svc, apps, _, _ := newReviewFixture(t)
	app := pendingApplication(domain.ApplicationKindVolunteer)
	app.Status = domain.ApplicationStatusRejected

	apps.On("GetByIDForUpdate", mock.Anything, "app-1").Return(app, nil)

	_, err := svc.Reject(context.Background(), "app-1", "admin-1", "again")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	apps.AssertNotCalled(t, "MarkDecided", mock.Anything, mock.Anything)
}
