package cache

import (
	"context"
	"log/slog"
	"time"

	"glamping-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_ADDR is empty or the server does not
// answer a ping; callers fall back to in-process state.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func()) {
	if cfg.Addr == "" {
		slog.Info("redis not configured")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, continuing without it", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil, func() {}
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup
}
