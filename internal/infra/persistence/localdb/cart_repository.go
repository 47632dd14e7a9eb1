package localdb

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	store stateStore
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		store: stateStore{db: db},
	}
}

// SaveCart persists the complete cart snapshot, replacing any prior one.
func (repo *cartRepository) SaveCart(ctx context.Context, cart *entity.Cart) error {
	return repo.store.put(ctx, model.KeyCart, cart)
}

// LoadCart retrieves the persisted cart snapshot.
func (repo *cartRepository) LoadCart(ctx context.Context) (*entity.Cart, error) {
	var cart entity.Cart

	if err := repo.store.get(ctx, model.KeyCart, &cart); err != nil {
		if errors.Is(err, errStateNotFound) {
			return nil, repository.ErrCartStateNotFound
		}

		return nil, err
	}

	return &cart, nil
}
