package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
	logger   *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// CheckoutInput is the body of POST /checkout.
type CheckoutInput struct {
	DeliveryType    entity.DeliveryType     `json:"deliveryType" validate:"required"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	CustomerName    string                  `json:"customerName" validate:"required"`
	PaymentMethod   entity.PaymentMethod    `json:"paymentMethod" validate:"required"`
	CustomerNotes   string                  `json:"customerNotes,omitempty"`
}

// Submit handles POST /checkout.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var input CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	info := entity.DeliveryInfo{
		Type:         input.DeliveryType,
		Address:      input.DeliveryAddress,
		CustomerName: input.CustomerName,
	}

	result, err := h.checkout.Submit(c.Request().Context(), info, input.PaymentMethod, input.CustomerNotes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Order placed")
}
