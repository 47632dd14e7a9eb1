package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// menuAPI implements the service.MenuAPI port.
type menuAPI struct {
	client *Client
}

// NewMenuAPI is the constructor for menuAPI.
func NewMenuAPI(client *Client) service.MenuAPI {
	return &menuAPI{client: client}
}

// FetchMenu retrieves the full product catalog.
func (a *menuAPI) FetchMenu(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := a.client.do(ctx, http.MethodGet, "/menu", nil, nil, &products); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return nil, domainerrors.ErrInternalError.WithDetails(statusErr.message)
		}

		return nil, err
	}

	return products, nil
}

// FetchProduct retrieves a single product with its customization options.
func (a *menuAPI) FetchProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.do(ctx, http.MethodGet, "/menu/products/"+productID, nil, nil, &product); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			if statusErr.status == http.StatusNotFound {
				return nil, domainerrors.ErrProductNotFound.WithDetails(statusErr.message)
			}

			return nil, domainerrors.ErrInternalError.WithDetails(statusErr.message)
		}

		return nil, err
	}

	return &product, nil
}
