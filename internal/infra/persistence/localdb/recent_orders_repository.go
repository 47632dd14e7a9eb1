package localdb

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// recentOrdersRepository implements the repository.RecentOrdersRepository interface.
type recentOrdersRepository struct {
	store stateStore
}

// NewRecentOrdersRepository is the constructor for recentOrdersRepository.
func NewRecentOrdersRepository(db *gorm.DB) repository.RecentOrdersRepository {
	return &recentOrdersRepository{
		store: stateStore{db: db},
	}
}

// SaveRecentOrders persists the complete ledger, replacing any prior one.
func (repo *recentOrdersRepository) SaveRecentOrders(ctx context.Context, orderIDs []string) error {
	return repo.store.put(ctx, model.KeyRecentOrders, orderIDs)
}

// LoadRecentOrders retrieves the persisted ledger.
func (repo *recentOrdersRepository) LoadRecentOrders(ctx context.Context) ([]string, error) {
	var orderIDs []string

	if err := repo.store.get(ctx, model.KeyRecentOrders, &orderIDs); err != nil {
		if errors.Is(err, errStateNotFound) {
			return nil, repository.ErrLedgerNotFound
		}

		return nil, err
	}

	return orderIDs, nil
}
