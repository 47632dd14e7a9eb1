package localdb

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.LocalState.Path = filepath.Join(t.TempDir(), "state.db")

	db, err := New(Params{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	return db
}

func TestCartRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	cart := &entity.Cart{Items: []entity.CartItem{
		{
			ProductID: "margherita",
			Name:      "Margherita",
			BasePrice: decimal.NewFromFloat(12.99),
			UnitPrice: decimal.NewFromFloat(13.49),
			Quantity:  2,
			Customizations: []entity.Customization{
				{IngredientID: "olives", Action: entity.ActionAdd, PriceModifier: decimal.NewFromFloat(0.5), Name: "Olives"},
			},
		},
	}}

	require.NoError(t, repo.SaveCart(ctx, cart))

	loaded, err := repo.LoadCart(ctx)
	require.NoError(t, err)

	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "margherita", loaded.Items[0].ProductID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, loaded.Items[0].UnitPrice.Equal(decimal.NewFromFloat(13.49)))
	require.Len(t, loaded.Items[0].Customizations, 1)
	assert.Equal(t, entity.ActionAdd, loaded.Items[0].Customizations[0].Action)
}

func TestCartRepository_SaveReplacesWholeValue(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, &entity.Cart{Items: []entity.CartItem{{ProductID: "a", Quantity: 1}}}))
	require.NoError(t, repo.SaveCart(ctx, &entity.Cart{}))

	loaded, err := repo.LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestCartRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	_, err := repo.LoadCart(context.Background())

	assert.True(t, errors.Is(err, repository.ErrCartStateNotFound))
}

func TestCartRepository_CorruptValueSurfacesError(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	entry := model.StateEntryModel{Key: model.KeyCart, Value: "{not json", UpdatedAt: time.Now()}
	require.NoError(t, db.Create(&entry).Error)

	_, err := repo.LoadCart(ctx)

	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrCartStateNotFound))
}

func TestRecentOrdersRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRecentOrdersRepository(db)
	ctx := context.Background()

	_, err := repo.LoadRecentOrders(ctx)
	assert.True(t, errors.Is(err, repository.ErrLedgerNotFound))

	require.NoError(t, repo.SaveRecentOrders(ctx, []string{"o3", "o2", "o1"}))

	ids, err := repo.LoadRecentOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"o3", "o2", "o1"}, ids)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	_, err := repo.LoadToken(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	require.NoError(t, repo.SaveToken(ctx, "bearer-token"))

	token, err := repo.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", token)

	require.NoError(t, repo.DeleteToken(ctx))

	_, err = repo.LoadToken(ctx)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	// Deleting an absent session stays quiet.
	require.NoError(t, repo.DeleteToken(ctx))
}
