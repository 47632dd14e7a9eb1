package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// OrdersHandler holds dependencies for order listing handlers.
type OrdersHandler struct {
	orders usecase.OrdersUsecase
	logger *slog.Logger
}

// NewOrdersHandler is the constructor for OrdersHandler, injected by Fx.
func NewOrdersHandler(orders usecase.OrdersUsecase, logger *slog.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders: orders,
		logger: logger,
	}
}

// Recent handles GET /orders/recent.
func (h *OrdersHandler) Recent(c echo.Context) error {
	ids := h.orders.RecentOrders(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]any{"orderIds": ids}, "")
}

// History handles GET /orders/history.
func (h *OrdersHandler) History(c echo.Context) error {
	orders, err := h.orders.History(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders}, "")
}
