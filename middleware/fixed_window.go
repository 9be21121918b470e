package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// WindowLimiter admits up to a fixed number of requests per client within a
// fixed window.
type WindowLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisWindowLimiter counts requests in Redis so the cap holds across
// replicas. One key per client per window, expired by Redis.
type RedisWindowLimiter struct {
	Client *redis.Client
	Window time.Duration
	Max    int
}

func (l *RedisWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(l.Window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:webhook:%s:%d", key, bucket)

	count, err := l.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("middleware: rate-limit incr: %w", err)
	}
	if count == 1 {
		l.Client.Expire(ctx, redisKey, l.Window)
	}
	return count <= int64(l.Max), nil
}

type windowEntry struct {
	count       int
	windowStart time.Time
}

// MemoryWindowLimiter is the single-process fallback when Redis is not
// configured.
type MemoryWindowLimiter struct {
	Window time.Duration
	Max    int

	// Now is the clock; nil means time.Now.
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
}

func (l *MemoryWindowLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entries == nil {
		l.entries = make(map[string]*windowEntry)
	}

	e, ok := l.entries[key]
	if !ok || now().Sub(e.windowStart) >= l.Window {
		l.entries[key] = &windowEntry{count: 1, windowStart: now()}
		return true, nil
	}
	e.count++
	return e.count <= l.Max, nil
}

// NewWindowLimiter picks the Redis implementation when a client is available,
// otherwise in-process counters.
func NewWindowLimiter(client *redis.Client, window time.Duration, max int) WindowLimiter {
	if client != nil {
		return &RedisWindowLimiter{Client: client, Window: window, Max: max}
	}
	return &MemoryWindowLimiter{Window: window, Max: max}
}

// FixedWindowMiddleware applies the per-client webhook cap. Throttled callers
// get the fixed rejection text; a broken limiter backend fails open.
func FixedWindowMiddleware(limiter WindowLimiter, rejectionText string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			zap.L().Warn("Rate limiter unavailable, admitting request", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			zap.L().Warn("Webhook rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"fulfillmentText": rejectionText})
			return
		}
		c.Next()
	}
}
