package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hrm-api/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis. An empty address disables Redis and
// returns a nil client; callers fall back to in-process implementations.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		slog.Info("redis address not configured, redis-backed features disabled")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	slog.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return rdb, nil
}
