package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
)

// SessionHandler holds dependencies for session handlers. Token issuance
// happens elsewhere; these endpoints only store and clear what the caller
// was issued.
type SessionHandler struct {
	session service.SessionGateway
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session service.SessionGateway, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// EstablishInput is the body of PUT /session.
type EstablishInput struct {
	Token string `json:"token" validate:"required"`
}

// Establish handles PUT /session.
func (h *SessionHandler) Establish(c echo.Context) error {
	var input EstablishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	if err := h.session.Establish(ctx, input.Token); err != nil {
		return errors.WithStack(err)
	}

	user, _ := h.session.CurrentUser(ctx)

	return response.Success(c, http.StatusOK, user, "Session established")
}

// Current handles GET /session.
func (h *SessionHandler) Current(c echo.Context) error {
	user, ok := h.session.CurrentUser(c.Request().Context())
	if !ok {
		return response.Success(c, http.StatusOK, map[string]any{"authenticated": false}, "")
	}

	return response.Success(c, http.StatusOK, map[string]any{"authenticated": true, "user": user}, "")
}

// Invalidate handles DELETE /session.
func (h *SessionHandler) Invalidate(c echo.Context) error {
	if err := h.session.Invalidate(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session cleared")
}
