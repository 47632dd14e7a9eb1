package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// AddItemInput is the body of POST /cart/items. The product is looked up
// in the catalog so the caller cannot supply its own prices.
type AddItemInput struct {
	ProductID      string                  `json:"productId" validate:"required"`
	Quantity       int                     `json:"quantity" validate:"required,min=1"`
	Customizations []CustomizationSelector `json:"customizations" validate:"omitempty,dive"`
}

// CustomizationSelector names a catalog option by ingredient and action.
// The option's price modifier and display name come from the catalog, never
// from the request body.
type CustomizationSelector struct {
	IngredientID string                     `json:"ingredientId" validate:"required"`
	Action       entity.CustomizationAction `json:"action" validate:"required"`
}

// UpdateQuantityInput is the body of PATCH /cart/items/:index.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	snapshot := h.cart.Snapshot(c.Request().Context())

	return response.Success(c, http.StatusOK, snapshot, "")
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	product, err := h.catalog.Product(ctx, input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	customizations, err := resolveCustomizations(product, input.Customizations)
	if err != nil {
		return err
	}

	snapshot, err := h.cart.AddItem(ctx, product, input.Quantity, customizations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, snapshot, "Item added to cart")
}

// resolveCustomizations maps requested selectors to the catalog's options.
func resolveCustomizations(product *entity.Product, selectors []CustomizationSelector) ([]entity.Customization, error) {
	if len(selectors) == 0 {
		return nil, nil
	}

	customizations := make([]entity.Customization, 0, len(selectors))
	for _, selector := range selectors {
		option, ok := product.ResolveCustomization(selector.IngredientID, selector.Action)
		if !ok {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("product %q does not offer %s %s", product.ID, selector.Action, selector.IngredientID)))
		}
		if !option.Available {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("option %s %s is currently unavailable", selector.Action, selector.IngredientID)))
		}

		customizations = append(customizations, entity.Customization{
			IngredientID:  option.IngredientID,
			Action:        option.Action,
			PriceModifier: option.PriceModifier,
			Name:          option.Name,
		})
	}

	return customizations, nil
}

// UpdateQuantity handles PATCH /cart/items/:index.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Item index must be an integer")
	}

	var input UpdateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	snapshot, err := h.cart.UpdateQuantity(c.Request().Context(), index, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// RemoveItem handles DELETE /cart/items/:index.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Item index must be an integer")
	}

	snapshot, err := h.cart.RemoveItem(c.Request().Context(), index)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
