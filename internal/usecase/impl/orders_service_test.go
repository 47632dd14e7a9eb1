package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

// ordersServiceFixtures holds all test dependencies for ledger tests.
type ordersServiceFixtures struct {
	service    usecase.OrdersUsecase
	ledgerRepo *mockRepo.MockRecentOrdersRepository
	orderAPI   *mockSvc.MockOrderAPI
}

func createTestOrdersService(t *testing.T) ordersServiceFixtures {
	ledgerRepo := mockRepo.NewMockRecentOrdersRepository(t)
	orderAPI := mockSvc.NewMockOrderAPI(t)

	cfg := &config.Config{}
	cfg.Cart.RecentOrdersCapacity = 5

	service := NewOrdersService(cfg, ledgerRepo, orderAPI, slog.New(slog.DiscardHandler))

	return ordersServiceFixtures{
		service:    service,
		ledgerRepo: ledgerRepo,
		orderAPI:   orderAPI,
	}
}

func TestOrdersService_Remember_BoundedAtCapacity(t *testing.T) {
	fx := createTestOrdersService(t)
	ctx := context.Background()

	fx.ledgerRepo.EXPECT().
		LoadRecentOrders(ctx).
		Return(nil, repository.ErrLedgerNotFound)
	fx.ledgerRepo.EXPECT().
		SaveRecentOrders(ctx, mock.AnythingOfType("[]string")).
		Return(nil)

	for _, id := range []string{"o1", "o2", "o3", "o4", "o5", "o6"} {
		require.NoError(t, fx.service.Remember(ctx, id))
	}

	ids := fx.service.RecentOrders(ctx)
	assert.Equal(t, []string{"o6", "o5", "o4", "o3", "o2"}, ids, "oldest entry must be evicted")
}

func TestOrdersService_Remember_DuplicateIsNoOp(t *testing.T) {
	fx := createTestOrdersService(t)
	ctx := context.Background()

	fx.ledgerRepo.EXPECT().
		LoadRecentOrders(ctx).
		Return(nil, repository.ErrLedgerNotFound)
	fx.ledgerRepo.EXPECT().
		SaveRecentOrders(ctx, []string{"o1"}).
		Return(nil).
		Once()

	require.NoError(t, fx.service.Remember(ctx, "o1"))
	require.NoError(t, fx.service.Remember(ctx, "o1"))

	assert.Equal(t, []string{"o1"}, fx.service.RecentOrders(ctx))
}

func TestOrdersService_Remember_EmptyIDIgnored(t *testing.T) {
	fx := createTestOrdersService(t)

	require.NoError(t, fx.service.Remember(context.Background(), ""))
}

func TestOrdersService_RecentOrders_RestoresPersistedLedger(t *testing.T) {
	fx := createTestOrdersService(t)
	ctx := context.Background()

	fx.ledgerRepo.EXPECT().
		LoadRecentOrders(ctx).
		Return([]string{"o9", "o8"}, nil)

	assert.Equal(t, []string{"o9", "o8"}, fx.service.RecentOrders(ctx))
}

func TestOrdersService_RecentOrders_CorruptLedgerFallsOpen(t *testing.T) {
	fx := createTestOrdersService(t)
	ctx := context.Background()

	fx.ledgerRepo.EXPECT().
		LoadRecentOrders(ctx).
		Return(nil, errors.New("invalid character 'x'"))

	assert.Empty(t, fx.service.RecentOrders(ctx))
}

func TestOrdersService_History(t *testing.T) {
	fx := createTestOrdersService(t)
	ctx := context.Background()

	want := []*entity.Order{{ID: "o1", Status: entity.StatusCompleted}}
	fx.orderAPI.EXPECT().
		FetchOrderHistory(ctx).
		Return(want, nil)

	got, err := fx.service.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
