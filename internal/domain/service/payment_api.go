package service

import (
	"context"
)

// PaymentAPI defines the port to the payment provider endpoints.
type PaymentAPI interface {
	// InitiatePayment opens a payment session for the order. A non-empty
	// paymentURL means the caller must navigate the user there to finish
	// paying; an empty one means no redirect is required.
	InitiatePayment(ctx context.Context, orderID string) (paymentURL string, err error)

	// CompletePayment reports a simulated provider callback for an order,
	// mirroring what the real provider would post to the webhook.
	CompletePayment(ctx context.Context, provider, orderID, transactionID string, success bool) error
}
