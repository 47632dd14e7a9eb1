package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the interface for catalog reads. They feed the
// pricing inputs and carry no client-side state.
type CatalogUsecase interface {
	// Menu retrieves the full product catalog.
	Menu(ctx context.Context) ([]*entity.Product, error)

	// Product retrieves a single product with its customization options.
	Product(ctx context.Context, productID string) (*entity.Product, error)
}
