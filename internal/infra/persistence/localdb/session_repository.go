package localdb

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	store stateStore
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		store: stateStore{db: db},
	}
}

// SaveToken persists the bearer token, replacing any prior one.
func (repo *sessionRepository) SaveToken(ctx context.Context, token string) error {
	return repo.store.put(ctx, model.KeySession, token)
}

// LoadToken retrieves the persisted bearer token.
func (repo *sessionRepository) LoadToken(ctx context.Context) (string, error) {
	var token string

	if err := repo.store.get(ctx, model.KeySession, &token); err != nil {
		if errors.Is(err, errStateNotFound) {
			return "", repository.ErrSessionNotFound
		}

		return "", err
	}

	return token, nil
}

// DeleteToken removes the persisted bearer token, if any.
func (repo *sessionRepository) DeleteToken(ctx context.Context) error {
	return repo.store.delete(ctx, model.KeySession)
}
