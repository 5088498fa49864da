//go:build unit

package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glamping-booking/internal/handler/middleware"
	"glamping-booking/internal/pkg/clock"
	"glamping-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	r, _ := newLimitedRouterAt(cfg, clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
	return r
}

func newLimitedRouterAt(cfg config.RateLimitConfig, clk clock.Clock) (*gin.Engine, *middleware.RateLimiter) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := middleware.NewRateLimiter(cfg, nil, clk)
	r.POST("/book", limiter.Limit("create"), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r, limiter
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_LocalBucket(t *testing.T) {
	r := newLimitedRouter(config.RateLimitConfig{Capacity: 2, RefillPerSec: 0.001})

	first := hit(r, "10.0.0.1")
	second := hit(r, "10.0.0.1")
	third := hit(r, "10.0.0.1")
	otherClient := hit(r, "10.0.0.2")

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"message":"Too many requests, please try again later"}}`, third.Body.String())
	assert.Equal(t, http.StatusCreated, otherClient.Code)
}

func TestRateLimiter_DisabledWithZeroCapacity(t *testing.T) {
	r := newLimitedRouter(config.RateLimitConfig{Capacity: 0})

	for range 5 {
		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1").Code)
	}
}

func TestRateLimiter_EvictsIdleLocalBuckets(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	// an empty bucket refills in 2s, so idle buckets go after the one minute floor
	r, limiter := newLimitedRouterAt(config.RateLimitConfig{Capacity: 2, RefillPerSec: 1}, clk)

	for i := range 50 {
		hit(r, fmt.Sprintf("10.0.1.%d", i))
	}
	assert.Equal(t, 50, limiter.LocalBuckets())

	clk.Add(30 * time.Second)
	hit(r, "10.0.0.1")
	assert.Equal(t, 51, limiter.LocalBuckets(), "nothing is idle long enough yet")

	clk.Add(31 * time.Second)
	hit(r, "10.0.0.2")
	assert.Equal(t, 2, limiter.LocalBuckets(), "only buckets seen within the last minute survive")

	assert.Equal(t, http.StatusCreated, hit(r, "10.0.1.7").Code, "an evicted client starts from a full bucket")
}

func TestRateLimiter_ActiveBucketKeepsItsState(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	r, _ := newLimitedRouterAt(config.RateLimitConfig{Capacity: 1, RefillPerSec: 0.001}, clk)

	require.Equal(t, http.StatusCreated, hit(r, "10.0.0.1").Code)
	for range 3 {
		clk.Add(50 * time.Second)
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)
	}
}
