package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/localdb"
	"storefront/internal/infra/stream"
	"storefront/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localdb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localdb.NewCartRepository,
			localdb.NewRecentOrdersRepository,
			localdb.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionGateway,
			api.NewClient,
			api.NewOrderAPI,
			api.NewPaymentAPI,
			api.NewMenuAPI,
			newLocalBus,
			stream.NewStatusStream,
		),
	)
}

// newLocalBus creates the in-process status bus used when no external
// stream driver is configured.
func newLocalBus(cfg *config.Config, logger *slog.Logger) *stream.LocalBus {
	bufferSize := 16
	if cfg.Stream != nil && cfg.Stream.BufferSize > 0 {
		bufferSize = cfg.Stream.BufferSize
	}

	return stream.NewLocalBus(bufferSize, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrdersService,
			impl.NewCatalogService,
			impl.NewTrackingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewTrackingHandler,
			handler.NewOrdersHandler,
			handler.NewCatalogHandler,
			handler.NewSessionHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
