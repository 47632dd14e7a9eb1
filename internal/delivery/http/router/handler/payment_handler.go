package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
)

// PaymentHandler holds dependencies for the simulated payment callback.
type PaymentHandler struct {
	payments service.PaymentAPI
	logger   *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(payments service.PaymentAPI, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

// SimulateInput is the body of POST /payments/simulate/:provider.
type SimulateInput struct {
	OrderID       string `json:"orderId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	Success       bool   `json:"success"`
}

// Simulate handles POST /payments/simulate/:provider. It reports the
// provider outcome the way the real provider's webhook would.
func (h *PaymentHandler) Simulate(c echo.Context) error {
	var input SimulateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment simulation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	provider := c.Param("provider")
	ctx := c.Request().Context()

	if err := h.payments.CompletePayment(ctx, provider, input.OrderID, input.TransactionID, input.Success); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Simulated payment callback",
		"provider", provider,
		"orderID", input.OrderID,
		"success", input.Success,
	)

	return response.Success(c, http.StatusOK, nil, "Payment result reported")
}
