package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// ordersService implements the OrdersUsecase interface. The ledger is a
// small bounded list, most recent first, persisted whole on every change.
type ordersService struct {
	ledgerRepo repository.RecentOrdersRepository
	orderAPI   service.OrderAPI
	capacity   int
	logger     *slog.Logger

	mu       sync.Mutex
	ids      []string
	restored bool
}

// NewOrdersService is the constructor for ordersService.
func NewOrdersService(
	cfg *config.Config,
	ledgerRepo repository.RecentOrdersRepository,
	orderAPI service.OrderAPI,
	logger *slog.Logger,
) usecase.OrdersUsecase {
	return &ordersService{
		ledgerRepo: ledgerRepo,
		orderAPI:   orderAPI,
		capacity:   cfg.Cart.RecentOrdersCapacity,
		logger:     logger,
	}
}

// Remember prepends the order id if absent and evicts beyond capacity.
func (srv *ordersService) Remember(ctx context.Context, orderID string) error {
	if orderID == "" {
		return nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.restoreLocked(ctx)

	if slices.Contains(srv.ids, orderID) {
		return nil
	}

	srv.ids = append([]string{orderID}, srv.ids...)
	if len(srv.ids) > srv.capacity {
		srv.ids = srv.ids[:srv.capacity]
	}

	if err := srv.ledgerRepo.SaveRecentOrders(ctx, srv.ids); err != nil {
		srv.logger.Error("Failed to persist recent orders ledger", "error", err)

		return errors.Wrap(err, "failed to persist recent orders ledger")
	}

	return nil
}

// RecentOrders returns the remembered ids, most recent first.
func (srv *ordersService) RecentOrders(ctx context.Context) []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.restoreLocked(ctx)

	return append([]string(nil), srv.ids...)
}

// History retrieves the authenticated user's orders from the server.
func (srv *ordersService) History(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderAPI.FetchOrderHistory(ctx)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// restoreLocked lazily rehydrates the ledger on first use. Missing or
// unreadable state falls open to an empty ledger.
func (srv *ordersService) restoreLocked(ctx context.Context) {
	if srv.restored {
		return
	}
	srv.restored = true

	ids, err := srv.ledgerRepo.LoadRecentOrders(ctx)
	switch {
	case err == nil:
		if len(ids) > srv.capacity {
			ids = ids[:srv.capacity]
		}
		srv.ids = ids
	case errors.Is(err, repository.ErrLedgerNotFound):
	default:
		srv.logger.Warn("Failed to restore recent orders ledger, starting empty", "error", err)
	}
}
