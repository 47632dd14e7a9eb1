package stream

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Stream driver names accepted in configuration.
const (
	DriverLocal  = "local"
	DriverGoogle = "google"
)

// StreamParams holds dependencies for StatusStream, injected by Fx
type StreamParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Bus    *LocalBus
}

// NewStatusStream creates a StatusStream based on configuration. An absent
// stream section falls back to the in-process bus: tracking then works on
// snapshots alone plus whatever is published locally.
func NewStatusStream(params StreamParams) (service.StatusStream, error) {
	cfg := params.Config.Stream
	logger := params.Logger

	if cfg == nil || cfg.Driver == "" || cfg.Driver == DriverLocal {
		logger.Info("Using local in-process status stream")

		return params.Bus, nil
	}

	switch cfg.Driver {
	case DriverGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google driver")
		}
		if cfg.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for google driver")
		}
		logger.Info("Using Google Pub/Sub status stream",
			slog.String("project_id", cfg.ProjectID),
			slog.String("subscription_id", cfg.SubscriptionID),
		)

		googleStream, err := NewGoogleStatusStream(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, cfg.BufferSize, logger)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing status stream")

				return googleStream.(*googleStatusStream).Close()
			},
		})

		return googleStream, nil

	default:
		return nil, errors.Errorf("unknown stream driver: %s", cfg.Driver)
	}
}
