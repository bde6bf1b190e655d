package zone

import (
	"context"
	"log/slog"

	"addressbook/config"
	"addressbook/internal/domain/constants"
	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for ZoneClient, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewZoneClient creates a ZoneClient based on configuration
func NewZoneClient(params ClientParams) (service.ZoneClient, error) {
	cfg := params.Config.Blacklist
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.ZoneProviderStatic {
		var postcodes []string
		if cfg != nil && cfg.Static != nil {
			postcodes = cfg.Static.Postcodes
		}
		logger.Info("Using static blacklist", slog.Int("zones", len(postcodes)))

		return NewStaticZoneClient(postcodes), nil
	}

	switch cfg.Provider {
	case constants.ZoneProviderHTTP:
		if cfg.HTTP == nil || cfg.HTTP.BaseURL == "" {
			return nil, errors.New("base URL is required for http zone provider")
		}
		logger.Info("Using HTTP zone source",
			slog.String("base_url", cfg.HTTP.BaseURL),
			slog.String("path", cfg.HTTP.Path),
		)

		return NewHTTPZoneClient(cfg.HTTP.BaseURL, cfg.HTTP.Path, cfg.HTTP.Timeout, logger), nil

	case constants.ZoneProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("address is required for redis zone provider")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using Redis zone source",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("key", cfg.Redis.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "ping redis zone source")
			},
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Redis zone source")

				return errors.WithStack(client.Close())
			},
		})

		return NewRedisZoneClient(client, cfg.Redis.Key, logger), nil

	case constants.ZoneProviderBlob:
		if cfg.Blob == nil || cfg.Blob.URL == "" {
			return nil, errors.New("bucket URL is required for blob zone provider")
		}
		bucket, err := OpenBucket(params.Ctx, cfg.Blob.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob zone source",
			slog.String("url", cfg.Blob.URL),
			slog.String("key", cfg.Blob.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing blob zone source")

				return errors.WithStack(bucket.Close())
			},
		})

		return NewBlobZoneClient(bucket, cfg.Blob.Key, logger), nil

	default:
		return nil, errors.Errorf("unknown blacklist provider: %s", cfg.Provider)
	}
}

// Module provides the zone lookup FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewZoneClient),
)
