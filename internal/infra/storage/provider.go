package storage

import (
	"context"
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client storage: local storage from the configured provider,
// session storage always in memory.
func New(params Params) (*repository.ClientStorage, error) {
	cfg := params.Config.Storage

	local, err := newLocalStore(params, cfg)
	if err != nil {
		return nil, err
	}
	session := NewMemoryStore()

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.Join(local.Close(), session.Close())
		},
	})

	params.Logger.Info("Client storage ready", slog.String("provider", cfg.Provider))

	return &repository.ClientStorage{Local: local, Session: session}, nil
}

type closableStore interface {
	repository.KeyValueStore
	io.Closer
}

func newLocalStore(params Params, cfg *config.StorageConfig) (closableStore, error) {
	switch cfg.Provider {
	case config.StorageMemory:
		return NewMemoryStore(), nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
		})

		return NewRedisStore(client, cfg.Prefix), nil
	case config.StorageFile, "":
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		store.prefix = cfg.Prefix

		return store, nil
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
