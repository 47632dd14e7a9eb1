package localdb

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errStateNotFound marks an absent key; repositories translate it to their
// own sentinel.
var errStateNotFound = errors.New("state entry not found")

// stateStore reads and writes whole serialized values under well-known keys.
type stateStore struct {
	db *gorm.DB
}

// put serializes value and replaces the entry under key in one statement.
func (s *stateStore) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize state %q", key)
	}

	entry := model.StateEntryModel{
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&entry).Error; err != nil {
		return errors.Wrapf(err, "failed to persist state %q", key)
	}

	return nil
}

// get deserializes the entry under key into out.
func (s *stateStore) get(ctx context.Context, key string, out any) error {
	var entry model.StateEntryModel

	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errStateNotFound
		}

		return errors.Wrapf(err, "failed to load state %q", key)
	}

	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return errors.Wrapf(err, "failed to deserialize state %q", key)
	}

	return nil
}

// delete removes the entry under key; absent keys are not an error.
func (s *stateStore) delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.StateEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete state %q", key)
	}

	return nil
}
