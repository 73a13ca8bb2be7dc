package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/events"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func newStoryFixture(t *testing.T) (*StoryService, *MockStoryRepo, *recordingDispatcher) {
	t.Helper()
	stories := new(MockStoryRepo)
	dispatcher := &recordingDispatcher{}
	svc := NewStoryService(StoryDependencies{
		StoryRepo:  stories,
		Dispatcher: dispatcher,
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, stories, dispatcher
}

func TestStoryService_SubmitStartsPending(t *testing.T) {
	svc, stories, dispatcher := newStoryFixture(t)
	stories.On("Create", mock.Anything, mock.Anything).Return(nil)

	story, err := svc.Submit(context.Background(), nil, StoryInput{
		Title:      "Finding My Voice",
		AuthorName: "Sam",
		Body:       "It started at a youth workshop...",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StoryStatusPending, story.Status)
	assert.Nil(t, story.SubmittedBy)

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventStorySubmitted, published[0].Type)
}

func TestStoryService_ApprovePublishes(t *testing.T) {
	svc, stories, dispatcher := newStoryFixture(t)
	story := &domain.Story{ID: "story-1", Status: domain.StoryStatusPending}

	stories.On("GetByID", mock.Anything, "story-1").Return(story, nil)
	stories.On("Update", mock.Anything, story).Return(nil)

	approved, err := svc.Approve(context.Background(), "story-1", "admin-1", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StoryStatusApproved, approved.Status)
	require.NotNil(t, approved.PublishedAt)
	assert.Equal(t, svc.now(), *approved.PublishedAt)

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventStoryPublished, published[0].Type)
}

func TestStoryService_ApproveNonPendingConflicts(t *testing.T) {
	svc, stories, _ := newStoryFixture(t)
	story := &domain.Story{ID: "story-1", Status: domain.StoryStatusRejected}
	stories.On("GetByID", mock.Anything, "story-1").Return(story, nil)

	_, err := svc.Approve(context.Background(), "story-1", "admin-1", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	stories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStoryService_RejectRequiresNotes(t *testing.T) {
	svc, stories, _ := newStoryFixture(t)

	_, err := svc.Reject(context.Background(), "story-1", "admin-1", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	stories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestStoryService_UnpublishReturnsToQueue(t *testing.T) {
	svc, stories, dispatcher := newStoryFixture(t)
	publishedAt := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	reviewer := "admin-1"
	notes := "great story"
	story := &domain.Story{
		ID:          "story-1",
		Status:      domain.StoryStatusApproved,
		PublishedAt: &publishedAt,
		ReviewedBy:  &reviewer,
		AdminNotes:  &notes,
	}

	stories.On("GetByID", mock.Anything, "story-1").Return(story, nil)
	stories.On("Update", mock.Anything, story).Return(nil)

	unpublished, err := svc.Unpublish(context.Background(), "story-1", "admin-2")
	require.NoError(t, err)

	assert.Equal(t, domain.StoryStatusPending, unpublished.Status)
	assert.Nil(t, unpublished.PublishedAt)
	assert.Nil(t, unpublished.ReviewedBy)
	assert.Nil(t, unpublished.AdminNotes)

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventStoryUnpublished, published[0].Type)
}

func TestStoryService_UnpublishPendingConflicts(t *testing.T) {
	svc, stories, _ := newStoryFixture(t)
	story := &domain.Story{ID: "story-1", Status: domain.StoryStatusPending}
	stories.On("GetByID", mock.Anything, "story-1").Return(story, nil)

	_, err := svc.Unpublish(context.Background(), "story-1", "admin-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	stories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
