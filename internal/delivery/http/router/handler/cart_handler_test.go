package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
)

// cartHandlerFixtures wires the handler over real cart and catalog services
// with mocked outer edges.
type cartHandlerFixtures struct {
	handler *CartHandler
	cart    usecase.CartUsecase
	echo    *echo.Echo
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	logger := slog.New(slog.DiscardHandler)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().
		LoadCart(mock.Anything).
		Return(nil, repository.ErrCartStateNotFound)
	cartRepo.EXPECT().
		SaveCart(mock.Anything, mock.AnythingOfType("*entity.Cart")).
		Return(nil).
		Maybe()

	menuAPI := mockSvc.NewMockMenuAPI(t)
	menuAPI.EXPECT().
		FetchProduct(mock.Anything, "margherita").
		Return(&entity.Product{
			ID:        "margherita",
			Name:      "Margherita",
			BasePrice: decimal.NewFromFloat(12.99),
			CustomizableIngredients: []entity.IngredientOption{
				{
					IngredientID:  "olives",
					Action:        entity.ActionAdd,
					PriceModifier: decimal.NewFromFloat(0.50),
					Name:          "Olives",
					Available:     true,
				},
				{
					IngredientID:  "truffle",
					Action:        entity.ActionAdd,
					PriceModifier: decimal.NewFromFloat(4.00),
					Name:          "Truffle",
					Available:     false,
				},
			},
		}, nil)

	cart := impl.NewCartService(cartRepo, logger)
	catalog := impl.NewCatalogService(menuAPI, logger)

	e := echo.New()
	e.Validator = validator.New()

	return cartHandlerFixtures{
		handler: NewCartHandler(cart, catalog, logger),
		cart:    cart,
		echo:    e,
	}
}

func (fx cartHandlerFixtures) postAddItem(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestCartHandler_AddItem_PricesModifiersFromCatalog(t *testing.T) {
	fx := createTestCartHandler(t)

	// The submitted priceModifier is not part of the input shape and must
	// have no effect on the stored price.
	body := `{"productId":"margherita","quantity":1,"customizations":[` +
		`{"ingredientId":"olives","action":"ADD","priceModifier":99.99}]}`
	c, rec := fx.postAddItem(body)

	require.NoError(t, fx.handler.AddItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	snapshot := fx.cart.Snapshot(context.Background())
	require.Len(t, snapshot.Items, 1)
	require.Len(t, snapshot.Items[0].Customizations, 1)
	assert.Equal(t, "Olives", snapshot.Items[0].Customizations[0].Name)
	assert.True(t, snapshot.Items[0].Customizations[0].PriceModifier.Equal(decimal.NewFromFloat(0.50)),
		"modifier must come from the catalog, got %s", snapshot.Items[0].Customizations[0].PriceModifier)
	assert.True(t, snapshot.Items[0].UnitPrice.Equal(decimal.NewFromFloat(13.49)),
		"unit price must come from the catalog, got %s", snapshot.Items[0].UnitPrice)
}

func TestCartHandler_AddItem_RejectsUnknownCustomization(t *testing.T) {
	fx := createTestCartHandler(t)

	body := `{"productId":"margherita","quantity":1,"customizations":[` +
		`{"ingredientId":"pineapple","action":"ADD"}]}`
	c, _ := fx.postAddItem(body)

	err := fx.handler.AddItem(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Empty(t, fx.cart.Snapshot(context.Background()).Items)
}

func TestCartHandler_AddItem_RejectsUnavailableCustomization(t *testing.T) {
	fx := createTestCartHandler(t)

	body := `{"productId":"margherita","quantity":1,"customizations":[` +
		`{"ingredientId":"truffle","action":"ADD"}]}`
	c, _ := fx.postAddItem(body)

	err := fx.handler.AddItem(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Empty(t, fx.cart.Snapshot(context.Background()).Items)
}
