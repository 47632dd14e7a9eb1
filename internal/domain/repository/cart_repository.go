// Package repository defines the interfaces for the local persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartStateNotFound is returned when no cart snapshot has been persisted yet.
	ErrCartStateNotFound = errors.New("cart state not found")
)

// CartRepository persists the full cart snapshot under its well-known key.
// Writes replace the whole serialized value; partial updates are never
// performed.
type CartRepository interface {
	// SaveCart persists the complete cart snapshot, replacing any prior one.
	SaveCart(ctx context.Context, cart *entity.Cart) error

	// LoadCart retrieves the persisted cart snapshot.
	// Returns ErrCartStateNotFound when nothing has been persisted.
	LoadCart(ctx context.Context) (*entity.Cart, error)
}
