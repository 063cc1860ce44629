// Package postgres reads and writes the storefront tables directly with GORM, as an
// alternative to the PostgREST data source.
package postgres

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// poolMetricsName labels the pool statistics exported to Prometheus.
const poolMetricsName = "storefront"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the direct connection to the storefront tables, used when the data source
// provider is "postgres". The pool is checked on start and its statistics are exported
// while the application runs.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres data source")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement writes go through txManager.execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	var unregister func()
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Metrics.Enabled {
				if unregister, err = metrics.RegisterDB(sqlDB, poolMetricsName); err != nil {
					return errors.Wrap(err, "failed to register pool metrics")
				}
			}

			stats := sqlDB.Stats()
			params.Logger.Info("Connected to storefront database",
				slog.Int("max_open_conns", stats.MaxOpenConnections),
				slog.Int("open_conns", stats.OpenConnections),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			if unregister != nil {
				unregister()
			}

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}
