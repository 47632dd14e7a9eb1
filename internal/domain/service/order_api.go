package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRequestItem is one provider-facing line of an order creation request.
// Prices are deliberately absent; the server is the pricing authority for
// persisted orders.
type OrderRequestItem struct {
	ProductID           string                 `json:"productId"`
	Quantity            int                    `json:"quantity"`
	Customizations      []entity.Customization `json:"customizations"`
	SpecialInstructions string                 `json:"specialInstructions"`
}

// OrderRequest is the body of the order creation call.
type OrderRequest struct {
	Items           []OrderRequestItem      `json:"items"`
	DeliveryType    entity.DeliveryType     `json:"deliveryType"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	PaymentMethod   entity.PaymentMethod    `json:"paymentMethod"`
	CustomerNotes   string                  `json:"customerNotes,omitempty"`
	CustomerName    string                  `json:"customerName"`

	// IdempotencyKey is a client-generated token sent as a header so a
	// retried submission can be deduplicated server-side.
	IdempotencyKey string `json:"-"`
}

// OrderAPI defines the port to the server-side order endpoints.
type OrderAPI interface {
	// SubmitOrder creates an order from the request and returns the
	// server-assigned projection.
	SubmitOrder(ctx context.Context, req *OrderRequest) (*entity.Order, error)

	// FetchOrder retrieves the current snapshot of a single order.
	FetchOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// FetchOrderHistory retrieves the authenticated user's orders.
	FetchOrderHistory(ctx context.Context) ([]*entity.Order, error)
}
