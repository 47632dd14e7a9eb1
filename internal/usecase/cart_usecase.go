// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CartSnapshot is a read-only copy of the cart with its derived totals.
type CartSnapshot struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
}

// CartUsecase defines the interface for cart command and query use cases.
// All operations are atomic from the caller's perspective and persist the
// full cart after every mutation.
type CartUsecase interface {
	// AddItem prices the product with its customizations and merges it
	// into an existing line when the product and customization set match,
	// otherwise appends a new line. Quantity must be at least 1.
	AddItem(ctx context.Context, product *entity.Product, quantity int, customizations []entity.Customization) (*CartSnapshot, error)

	// UpdateQuantity sets the quantity of the line at index. A quantity of
	// zero or less removes the line. An out-of-range index is a no-op.
	UpdateQuantity(ctx context.Context, index, quantity int) (*CartSnapshot, error)

	// RemoveItem deletes the line at index. An out-of-range index is a no-op.
	RemoveItem(ctx context.Context, index int) (*CartSnapshot, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Snapshot returns the current cart and its derived totals.
	Snapshot(ctx context.Context) *CartSnapshot
}
