package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrdersUsecase defines the interface for the recent-orders ledger and the
// authenticated order history.
type OrdersUsecase interface {
	// Remember prepends the order id to the ledger if absent, evicts the
	// oldest entries beyond capacity, and persists the whole ledger.
	Remember(ctx context.Context, orderID string) error

	// RecentOrders returns the remembered order ids, most recent first.
	RecentOrders(ctx context.Context) []string

	// History retrieves the authenticated user's orders from the server.
	History(ctx context.Context) ([]*entity.Order, error)
}
