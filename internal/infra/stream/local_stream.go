// Package stream implements the real-time order status channel.
package stream

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/service"
)

// LocalBus is an in-process status channel for development and tests. It
// mirrors the real channel's contract: order-scoped fan-out, no replay, no
// acknowledgement; a slow subscriber silently misses events.
type LocalBus struct {
	logger     *slog.Logger
	bufferSize int

	mu   sync.Mutex
	subs map[*localSubscription]struct{}
}

// NewLocalBus is the constructor for LocalBus.
func NewLocalBus(bufferSize int, logger *slog.Logger) *LocalBus {
	if bufferSize <= 0 {
		bufferSize = 16
	}

	return &LocalBus{
		logger:     logger,
		bufferSize: bufferSize,
		subs:       make(map[*localSubscription]struct{}),
	}
}

// Publish pushes a status event to every subscription scoped to its order.
func (b *LocalBus) Publish(event service.StatusEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		if sub.orderID != event.OrderID {
			continue
		}
		select {
		case sub.events <- event:
		default:
			b.logger.Warn("Dropping status event for slow subscriber",
				slog.String("order_id", event.OrderID),
			)
		}
	}
}

// Subscribe opens a subscription scoped to the given order id.
func (b *LocalBus) Subscribe(_ context.Context, orderID string) (service.StatusSubscription, error) {
	sub := &localSubscription{
		bus:     b,
		orderID: orderID,
		events:  make(chan service.StatusEvent, b.bufferSize),
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub, nil
}

// localSubscription implements service.StatusSubscription.
type localSubscription struct {
	bus     *LocalBus
	orderID string
	events  chan service.StatusEvent
	once    sync.Once
}

// Events returns the channel of pushed status changes.
func (s *localSubscription) Events() <-chan service.StatusEvent {
	return s.events
}

// Close tears the subscription down. The events channel is closed under
// the bus lock so an in-flight Publish can never hit a closed channel.
func (s *localSubscription) Close() error {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s)
		close(s.events)
		s.bus.mu.Unlock()
	})

	return nil
}
