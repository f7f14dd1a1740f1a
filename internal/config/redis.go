package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_ADDR is empty or the server does not answer,
// callers treat a nil client as "cache disabled".
func NewRedisClient(env Env) *redis.Client {
	if env.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, report cache disabled", "addr", env.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}
