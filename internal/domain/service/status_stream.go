package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// StatusEvent is one pushed order status change. The channel provides no
// acknowledgement, replay or ordering beyond arrival order; status is
// last-write-wins.
type StatusEvent struct {
	OrderID string             `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
}

// StatusSubscription is an open, order-scoped subscription handle. Close
// must be called when the tracked order changes or tracking stops; a closed
// subscription's Events channel is closed and delivers nothing further.
type StatusSubscription interface {
	// Events returns the channel of pushed status changes for the
	// subscribed order.
	Events() <-chan StatusEvent

	// Close tears the subscription down. Safe to call more than once.
	Close() error
}

// StatusStream defines the port to the real-time status channel. The
// server multiplexes many order-scoped subscriptions and pushes
// status-change events only to matching subscribers.
type StatusStream interface {
	// Subscribe opens a subscription scoped to the given order id.
	Subscribe(ctx context.Context, orderID string) (StatusSubscription, error)
}
