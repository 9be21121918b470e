package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryoflow/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMemoryWindowLimiter(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	limiter := &middleware.MemoryWindowLimiter{
		Window: 15 * time.Minute,
		Max:    100,
		Now:    func() time.Time { return now },
	}

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		ok, err := limiter.Allow(ctx, "1.2.3.4")
		assert.NoError(t, err)
		assert.True(t, ok, "request %d should be admitted", i+1)
	}

	ok, err := limiter.Allow(ctx, "1.2.3.4")
	assert.NoError(t, err)
	assert.False(t, ok, "the 101st request in a window must be rejected")

	// Another client has its own counter.
	ok, _ = limiter.Allow(ctx, "5.6.7.8")
	assert.True(t, ok)

	// A fresh window resets the count.
	now = now.Add(15 * time.Minute)
	ok, _ = limiter.Allow(ctx, "1.2.3.4")
	assert.True(t, ok)
}

func TestFixedWindowMiddlewareRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := &middleware.MemoryWindowLimiter{Window: 15 * time.Minute, Max: 1}
	r := gin.New()
	r.POST("/webhook", middleware.FixedWindowMiddleware(limiter, "slow down please"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"fulfillmentText": "hello"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "slow down please")
}
