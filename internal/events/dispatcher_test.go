package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventStoryPublished, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	dispatcher.Subscribe(EventStoryUnpublished, func(ctx context.Context, event Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "e-1", Type: EventStoryPublished})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "e-1", received[0].ID)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventContactReceived, func(ctx context.Context, event Event) error {
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventContactReceived, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventContactReceived})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	err := dispatcher.Publish(context.Background(), Event{Type: EventApplicationSubmitted})
	require.NoError(t, err)
}
