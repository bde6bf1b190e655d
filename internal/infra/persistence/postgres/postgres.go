package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/lifecycle"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolStatsInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database (primary plus any configured read replicas)
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every repository call is a single statement, so GORM's implicit transaction is skipped.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go logPoolStats(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or alters the catalog tables to match the models
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.AddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate addresses table")
	}

	return nil
}

// logPoolStats reports connection pool saturation while the service runs
func logPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	var lastWaitCount int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			if stats.WaitCount == lastWaitCount {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool exhausted",
				slog.Int64("wait_count", stats.WaitCount-lastWaitCount),
				slog.Duration("wait_total", stats.WaitDuration),
				slog.Int("open", stats.OpenConnections),
				slog.Int("in_use", stats.InUse),
				slog.Int("max_open", stats.MaxOpenConnections),
			)
			lastWaitCount = stats.WaitCount
		}
	}
}
