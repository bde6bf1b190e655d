package main

import (
	"context"
	"fmt"
	"strings"

	"addressbook/config"
	"addressbook/internal/domain/constants"
	"addressbook/internal/domain/entity"
	"addressbook/internal/infra/auth"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/persistence/postgres"
	"addressbook/internal/infra/zone"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// runMigrate starts just enough of the service graph to reach the database
func runMigrate(ctx context.Context) error {
	var db *gorm.DB
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build migrate app")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "connect database")
	}
	defer func() { _ = app.Stop(context.Background()) }()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	fmt.Println("Migration complete")

	return nil
}

func runToken(subject, roles string) error {
	if subject == "" {
		return errors.New("-subject is required")
	}

	granted := entity.RolesFromStrings(splitList(roles))
	if len(granted) == 0 {
		return errors.Errorf("no valid roles in %q", roles)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateAccessToken(subject, granted)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}

func runSeedZones(ctx context.Context, postcodes []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Blacklist == nil {
		return errors.New("blacklist is not configured")
	}

	switch cfg.Blacklist.Provider {
	case constants.ZoneProviderRedis:
		if cfg.Blacklist.Redis == nil || cfg.Blacklist.Redis.Addr == "" {
			return errors.New("blacklist.redis.addr is required")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Blacklist.Redis.Addr,
			Password: cfg.Blacklist.Redis.Password,
			DB:       cfg.Blacklist.Redis.DB,
		})
		defer client.Close()

		if err := zone.ReplaceRedisZones(ctx, client, cfg.Blacklist.Redis.Key, postcodes); err != nil {
			return err
		}

	case constants.ZoneProviderBlob:
		if cfg.Blacklist.Blob == nil || cfg.Blacklist.Blob.URL == "" {
			return errors.New("blacklist.blob.url is required")
		}
		bucket, err := zone.OpenBucket(ctx, cfg.Blacklist.Blob.URL)
		if err != nil {
			return err
		}
		defer bucket.Close()

		if err := zone.WriteBlobZones(ctx, bucket, cfg.Blacklist.Blob.Key, postcodes); err != nil {
			return err
		}

	default:
		return errors.Errorf("provider %q cannot be seeded, use redis or blob", cfg.Blacklist.Provider)
	}

	fmt.Printf("Seeded %d zones into %s source\n", len(postcodes), cfg.Blacklist.Provider)

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
