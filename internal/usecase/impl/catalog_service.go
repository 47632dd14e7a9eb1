package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	menuAPI service.MenuAPI
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(menuAPI service.MenuAPI, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		menuAPI: menuAPI,
		logger:  logger,
	}
}

func (srv *catalogService) Menu(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.menuAPI.FetchMenu(ctx)
	if err != nil {
		srv.logger.Error("Failed to fetch menu", "error", err)

		return nil, err
	}

	return products, nil
}

func (srv *catalogService) Product(ctx context.Context, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	product, err := srv.menuAPI.FetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return product, nil
}
