package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *MockApplicationRepo, *recordingDispatcher) {
	t.Helper()
	apps := new(MockApplicationRepo)
	dispatcher := &recordingDispatcher{}
	svc := NewApplicationService(ApplicationDependencies{
		ApplicationRepo: apps,
		Dispatcher:      dispatcher,
	})
	return svc, apps, dispatcher
}

func TestApplicationService_SubmitForm(t *testing.T) {
	svc, apps, dispatcher := newApplicationFixture(t)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, err := svc.SubmitForm(context.Background(), domain.ApplicationKindVolunteer, "user-1", FormApplicationInput{
		FullName: "  Jordan Reyes ",
		Email:    "jordan@example.org",
		Fields:   map[string]any{"motivation": "community work", "full_name": "spoofed"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationKindVolunteer, app.Kind)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, "user-1", app.SubmittedBy)
	assert.Equal(t, "Jordan Reyes", app.Payload["full_name"])
	assert.Equal(t, "community work", app.Payload["motivation"])

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventApplicationSubmitted, published[0].Type)
}

func TestApplicationService_SubmitFormMissingFields(t *testing.T) {
	svc, apps, _ := newApplicationFixture(t)

	_, err := svc.SubmitForm(context.Background(), domain.ApplicationKindInternship, "user-1", FormApplicationInput{
		FullName: " ",
		Email:    "",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Details, "full_name")
	assert.Contains(t, domainErr.Details, "email")

	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_SubmitFormRejectsTypeChangeKind(t *testing.T) {
	svc, _, _ := newApplicationFixture(t)

	_, err := svc.SubmitForm(context.Background(), domain.ApplicationKindTypeChange, "user-1", FormApplicationInput{
		FullName: "Jordan",
		Email:    "jordan@example.org",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestApplicationService_SubmitTypeChange(t *testing.T) {
	svc, apps, dispatcher := newApplicationFixture(t)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, err := svc.SubmitTypeChange(context.Background(), "user-1", domain.UserTypeVolunteer)
	require.NoError(t, err)

	assert.Equal(t, domain.ApplicationKindTypeChange, app.Kind)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	require.NotNil(t, app.RequestedUserType)
	assert.Equal(t, domain.UserTypeVolunteer, *app.RequestedUserType)
	require.Len(t, dispatcher.events(), 1)
}

func TestApplicationService_SubmitTypeChangeInvalidType(t *testing.T) {
	svc, apps, _ := newApplicationFixture(t)

	_, err := svc.SubmitTypeChange(context.Background(), "user-1", domain.UserType("WIZARD"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_ListMineScopesToCaller(t *testing.T) {
	svc, apps, _ := newApplicationFixture(t)
	apps.On("ListWithFilter", mock.Anything, mock.MatchedBy(func(filter repository.ApplicationFilter) bool {
		return filter.SubmittedBy != nil && *filter.SubmittedBy == "user-1"
	})).Return([]domain.Application{{ID: "app-1"}}, nil)

	result, err := svc.ListMine(context.Background(), "user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
}
