package main

import (
	"context"
	"log/slog"
	"os"

	"addressbook/config"
	"addressbook/internal/delivery"
	"addressbook/internal/delivery/api"
	"addressbook/internal/delivery/api/middleware"
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/domain/service"
	"addressbook/internal/infra/auth"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/persistence/postgres"
	"addressbook/internal/infra/pubsub"
	"addressbook/internal/infra/zone"
	"addressbook/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		zone.Module,
		pubsub.Module,
		fx.Provide(
			newTokenService,
		),
	)
}

// newTokenService returns nil when no access secret is configured, leaving write routes open
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBlacklistService,
			impl.NewAddressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
