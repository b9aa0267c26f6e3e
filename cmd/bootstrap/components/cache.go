package components

import (
	"context"
	"log/slog"

	"lending-ledger/internal/infra/cache"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// DirectoryCacheModule wraps whichever Directory the store module provides.
var DirectoryCacheModule = fx.Module("cache/directory",
	fx.Provide(
		NewRedisClient,
	),
	fx.Decorate(
		func(inner shared.Directory, rdb *redis.Client, cfg config.Config, logger *slog.Logger) shared.Directory {
			return cache.NewDirectory(inner, rdb, cfg.Redis.ActorTTL, logger)
		},
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}
