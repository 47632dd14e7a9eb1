package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CatalogHandler holds dependencies for menu handlers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Menu handles GET /menu.
func (h *CatalogHandler) Menu(c echo.Context) error {
	products, err := h.catalog.Menu(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"products": products}, "")
}

// Product handles GET /menu/products/:id.
func (h *CatalogHandler) Product(c echo.Context) error {
	product, err := h.catalog.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}
