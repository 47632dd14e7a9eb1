package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
)

func TestCatalogService_Menu(t *testing.T) {
	menuAPI := mockSvc.NewMockMenuAPI(t)
	service := NewCatalogService(menuAPI, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	want := []*entity.Product{
		{ID: "margherita", Name: "Margherita", BasePrice: decimal.NewFromFloat(12.99)},
	}
	menuAPI.EXPECT().
		FetchMenu(ctx).
		Return(want, nil)

	got, err := service.Menu(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_Product(t *testing.T) {
	menuAPI := mockSvc.NewMockMenuAPI(t)
	service := NewCatalogService(menuAPI, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	want := &entity.Product{ID: "margherita", Name: "Margherita"}
	menuAPI.EXPECT().
		FetchProduct(ctx, "margherita").
		Return(want, nil)

	got, err := service.Product(ctx, "margherita")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_Product_EmptyIDRejected(t *testing.T) {
	menuAPI := mockSvc.NewMockMenuAPI(t)
	service := NewCatalogService(menuAPI, slog.New(slog.DiscardHandler))

	_, err := service.Product(context.Background(), "")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}
