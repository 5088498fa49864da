package bootstrap

import (
	"context"

	"glamping-booking/internal/infra/cache"
	"glamping-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis may return nil; the rate limiter then keeps its buckets in memory.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client
}
