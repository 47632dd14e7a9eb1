package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutResult reports what happened to a submitted order. A non-empty
// PaymentURL means the caller must navigate the user there to finish
// paying; the cart is then kept until payment confirmation comes back
// through tracking.
type CheckoutResult struct {
	Order       *entity.Order `json:"order"`
	PaymentURL  string        `json:"paymentUrl,omitempty"`
	CartCleared bool          `json:"cartCleared"`
}

// CheckoutUsecase defines the interface for order submission.
type CheckoutUsecase interface {
	// Submit converts the current cart into an order creation request and
	// places it. On success the order id is remembered in the
	// recent-orders ledger; pay-on-delivery orders clear the cart
	// immediately, provider-paid orders clear it only when no redirect is
	// required. On failure the cart is untouched.
	Submit(ctx context.Context, info entity.DeliveryInfo, payment entity.PaymentMethod, customerNotes string) (*CheckoutResult, error)
}
