package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// MenuAPI defines the port to the catalog endpoints. Catalog reads feed
// the pricing inputs; they carry no client-side state.
type MenuAPI interface {
	// FetchMenu retrieves the full product catalog.
	FetchMenu(ctx context.Context) ([]*entity.Product, error)

	// FetchProduct retrieves a single product with its customization options.
	FetchProduct(ctx context.Context, productID string) (*entity.Product, error)
}
