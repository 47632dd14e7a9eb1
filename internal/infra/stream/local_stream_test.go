package stream

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

func newTestBus() *LocalBus {
	return NewLocalBus(4, slog.New(slog.DiscardHandler))
}

func TestLocalBus_PublishReachesMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	sub, err := bus.Subscribe(context.Background(), "order-1")
	require.NoError(t, err)
	defer sub.Close()

	bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusReady})

	select {
	case ev := <-sub.Events():
		assert.Equal(t, "order-1", ev.OrderID)
		assert.Equal(t, entity.StatusReady, ev.Status)
	case <-time.After(time.Second):
		t.Fatal("expected event for subscribed order")
	}
}

func TestLocalBus_FiltersByOrder(t *testing.T) {
	bus := newTestBus()

	sub, err := bus.Subscribe(context.Background(), "order-1")
	require.NoError(t, err)
	defer sub.Close()

	bus.Publish(service.StatusEvent{OrderID: "order-2", Status: entity.StatusReady})

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event for other order: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLocalBus_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	bus := newTestBus()

	sub, err := bus.Subscribe(context.Background(), "order-1")
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, open := <-sub.Events()
	assert.False(t, open, "events channel must be closed after Close")

	// Publishing after close must not panic.
	bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusReady})
}

func TestLocalBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewLocalBus(1, slog.New(slog.DiscardHandler))

	sub, err := bus.Subscribe(context.Background(), "order-1")
	require.NoError(t, err)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusConfirmed})
		bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusPreparing})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish must never block on a full subscriber")
	}
}
