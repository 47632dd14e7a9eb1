package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// TrackingState is the coarse state of the tracking view.
type TrackingState string

const (
	// TrackingIdle means no order is selected; the recent-orders ledger is
	// offered for recovery. This is a valid state, not an error.
	TrackingIdle TrackingState = "idle"
	// TrackingLoading means the snapshot fetch is still in flight.
	TrackingLoading TrackingState = "loading"
	// TrackingActive means a snapshot is held and kept current from the
	// push stream.
	TrackingActive TrackingState = "active"
)

// TrackingView is the single current view of the tracked order exposed to
// the presentation layer.
type TrackingView struct {
	State          TrackingState `json:"state"`
	OrderID        string        `json:"orderId,omitempty"`
	Order          *entity.Order `json:"order,omitempty"`
	ProgressIndex  int           `json:"progressIndex"`
	RecentOrderIDs []string      `json:"recentOrderIds,omitempty"`
	Message        string        `json:"message,omitempty"`
}

// TrackingUsecase defines the interface for order tracking. It reconciles
// a one-shot order snapshot with the real-time status stream and owns the
// subscription's lifecycle.
type TrackingUsecase interface {
	// Open starts tracking the given order, tearing down any previous
	// subscription first. An absent or invalid id yields the idle view.
	// A push arriving before the snapshot resolves is buffered and applied
	// once the snapshot lands.
	Open(ctx context.Context, orderID string) (*TrackingView, error)

	// View returns the current tracking view.
	View(ctx context.Context) *TrackingView

	// Watch returns a channel of view updates. The channel closes when
	// ctx is done.
	Watch(ctx context.Context) <-chan TrackingView

	// Close tears down the active subscription, if any. Safe to call more
	// than once.
	Close() error
}
