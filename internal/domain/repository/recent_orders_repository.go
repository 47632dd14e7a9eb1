package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrLedgerNotFound is returned when no recent-orders ledger has been persisted yet.
var ErrLedgerNotFound = errors.New("recent orders ledger not found")

// RecentOrdersRepository persists the guest-recovery ledger of order ids,
// most recent first, under its well-known key. The whole list is written on
// every change.
type RecentOrdersRepository interface {
	// SaveRecentOrders persists the complete ledger, replacing any prior one.
	SaveRecentOrders(ctx context.Context, orderIDs []string) error

	// LoadRecentOrders retrieves the persisted ledger.
	// Returns ErrLedgerNotFound when nothing has been persisted.
	LoadRecentOrders(ctx context.Context) ([]string, error)
}
