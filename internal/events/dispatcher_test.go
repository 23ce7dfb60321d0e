package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishInvokesHandlersInRegistrationOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		order = append(order, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventOrderCreated})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventOrderDeleted}))
}

func TestPublishJoinsHandlerFailures(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	boom := errors.New("boom")
	var secondRan bool
	dispatcher.Subscribe(EventOrderUpdated, func(_ context.Context, _ Event) error {
		return boom
	})
	dispatcher.Subscribe(EventOrderUpdated, func(_ context.Context, _ Event) error {
		secondRan = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventOrderUpdated})
	require.ErrorIs(t, err, boom)
	require.True(t, secondRan)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventOrderUpdated}))
	require.False(t, called)
}
