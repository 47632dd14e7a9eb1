package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// orderAPI implements the service.OrderAPI port.
type orderAPI struct {
	client *Client
}

// NewOrderAPI is the constructor for orderAPI.
func NewOrderAPI(client *Client) service.OrderAPI {
	return &orderAPI{client: client}
}

// SubmitOrder creates an order. Rejections carry the server message
// verbatim; nothing is retried, the idempotency key covers caller retries.
func (a *orderAPI) SubmitOrder(ctx context.Context, req *service.OrderRequest) (*entity.Order, error) {
	headers := map[string]string{}
	if req.IdempotencyKey != "" {
		headers["Idempotency-Key"] = req.IdempotencyKey
	}

	var order entity.Order
	if err := a.client.do(ctx, http.MethodPost, "/orders", req, headers, &order); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return nil, domainerrors.ErrOrderSubmissionFailed.WithDetails(statusErr.message)
		}

		return nil, err
	}

	return &order, nil
}

// FetchOrder retrieves the current snapshot of a single order.
func (a *orderAPI) FetchOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	var order entity.Order
	if err := a.client.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &order); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			switch statusErr.status {
			case http.StatusNotFound:
				return nil, domainerrors.ErrOrderNotFound.WithDetails(statusErr.message)
			case http.StatusForbidden:
				return nil, domainerrors.ErrOrderAccessDenied.WithDetails(statusErr.message)
			default:
				return nil, domainerrors.ErrInternalError.WithDetails(statusErr.message)
			}
		}

		return nil, err
	}

	return &order, nil
}

// FetchOrderHistory retrieves the authenticated user's orders.
func (a *orderAPI) FetchOrderHistory(ctx context.Context) ([]*entity.Order, error) {
	var payload struct {
		Orders []*entity.Order `json:"orders"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/orders/my-orders", nil, nil, &payload); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return nil, domainerrors.ErrInternalError.WithDetails(statusErr.message)
		}

		return nil, err
	}

	return payload.Orders, nil
}
