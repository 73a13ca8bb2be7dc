package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youthbridge/portal-service/internal/domain"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func TestActivityService_CreateDerivesSlug(t *testing.T) {
	activities := new(MockActivityRepo)
	svc := NewActivityService(ActivityDependencies{ActivityRepo: activities})

	activities.On("SlugExists", mock.Anything, "summer-camp").Return(false, nil)
	activities.On("Create", mock.Anything, mock.Anything).Return(nil)

	activity, err := svc.Create(context.Background(), ActivityInput{Title: "Summer Camp", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "summer-camp", activity.Slug)
}

func TestActivityService_CreateResolvesSlugCollision(t *testing.T) {
	activities := new(MockActivityRepo)
	svc := NewActivityService(ActivityDependencies{ActivityRepo: activities})

	activities.On("SlugExists", mock.Anything, "summer-camp").Return(true, nil)
	activities.On("SlugExists", mock.Anything, "summer-camp-2").Return(false, nil)
	activities.On("Create", mock.Anything, mock.Anything).Return(nil)

	activity, err := svc.Create(context.Background(), ActivityInput{Title: "Summer Camp"})
	require.NoError(t, err)
	assert.Equal(t, "summer-camp-2", activity.Slug)
}

func TestActivityService_GetBySlugHidesDrafts(t *testing.T) {
	activities := new(MockActivityRepo)
	svc := NewActivityService(ActivityDependencies{ActivityRepo: activities})

	activities.On("GetBySlug", mock.Anything, "draft-event").Return(&domain.Activity{
		ID:        "a-1",
		Slug:      "draft-event",
		Published: false,
	}, nil)

	_, err := svc.GetBySlug(context.Background(), "draft-event")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestActivityService_UpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	activities := new(MockActivityRepo)
	svc := NewActivityService(ActivityDependencies{ActivityRepo: activities})

	existing := &domain.Activity{ID: "a-1", Title: "Summer Camp", Slug: "summer-camp"}
	activities.On("GetByID", mock.Anything, "a-1").Return(existing, nil)
	activities.On("Update", mock.Anything, existing).Return(nil)

	updated, err := svc.Update(context.Background(), "a-1", ActivityInput{
		Title:       "Summer Camp",
		Description: "now with details",
	})
	require.NoError(t, err)
	assert.Equal(t, "summer-camp", updated.Slug)
	activities.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything)
}
