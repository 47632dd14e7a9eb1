package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// TrackingHandler holds dependencies for order tracking handlers.
type TrackingHandler struct {
	tracking usecase.TrackingUsecase
	logger   *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(tracking usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		tracking: tracking,
		logger:   logger,
	}
}

// Open handles PUT /track/:orderId. The path parameter may legitimately be
// a serialized absent value; the use case maps those to the idle view.
func (h *TrackingHandler) Open(c echo.Context) error {
	view, err := h.tracking.Open(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// View handles GET /track.
func (h *TrackingHandler) View(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tracking.View(c.Request().Context()), "")
}

// Close handles DELETE /track.
func (h *TrackingHandler) Close(c echo.Context) error {
	if err := h.tracking.Close(); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tracking stopped")
}
