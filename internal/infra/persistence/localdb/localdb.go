// Package localdb contains the concrete implementation of the local
// persistence layer using GORM over an embedded sqlite file.
package localdb

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New opens the embedded sqlite state store and migrates its schema.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.LocalState.Path), &gorm.Config{
		// Single-process store with whole-value writes; per-statement
		// implicit transactions add nothing here.
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local state store")
	}

	if err := db.AutoMigrate(&model.StateEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate local state store")
	}

	params.Logger.Info("Local state store ready",
		slog.String("path", params.Config.LocalState.Path),
	)

	return db, nil
}
