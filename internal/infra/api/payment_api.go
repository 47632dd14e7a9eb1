package api

import (
	"context"
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// paymentAPI implements the service.PaymentAPI port.
type paymentAPI struct {
	client *Client
}

// NewPaymentAPI is the constructor for paymentAPI.
func NewPaymentAPI(client *Client) service.PaymentAPI {
	return &paymentAPI{client: client}
}

// InitiatePayment opens a payment session for the order.
func (a *paymentAPI) InitiatePayment(ctx context.Context, orderID string) (string, error) {
	body := map[string]string{"orderId": orderID}

	var payload struct {
		PaymentURL string `json:"paymentUrl"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/payments/initiate", body, nil, &payload); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return "", domainerrors.ErrPaymentInitiationFailed.WithDetails(statusErr.message)
		}

		return "", err
	}

	return payload.PaymentURL, nil
}

// CompletePayment reports a simulated provider callback for an order.
func (a *paymentAPI) CompletePayment(ctx context.Context, provider, orderID, transactionID string, success bool) error {
	status := "ok"
	if !success {
		status = "fail"
	}
	body := map[string]string{
		"orderId":       orderID,
		"transactionId": transactionID,
		"status":        status,
	}

	if err := a.client.do(ctx, http.MethodPost, "/payments/webhook/"+provider, body, nil, nil); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return domainerrors.ErrPaymentInitiationFailed.WithDetails(statusErr.message)
		}

		return err
	}

	return nil
}
