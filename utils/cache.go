package utils

import (
	"context"
	"time"

	"cryoflow/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the fixed-window webhook limiter. Nil when no REDIS_ADDR
// is configured; callers fall back to in-process counters.
var RedisClient *redis.Client

// InitRedis connects the shared Redis client. Returns the client, or nil when
// Redis is not configured or unreachable (the server still runs without it).
func InitRedis() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Redis unreachable, falling back to in-memory rate limiting: %v", err)
		return nil
	}
	RedisClient = client
	return client
}
