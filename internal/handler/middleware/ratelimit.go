package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"glamping-booking/internal/handler/httperr"
	"glamping-booking/internal/pkg/clock"
	"glamping-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const rateKeyPrefix = "rl"

var errRateLimited = errors.New("rate limit exceeded")

// token bucket shared by every API instance; returns {allowed, tokens, retry_after_ms}
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_per_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
tokens = math.min(capacity, tokens + elapsed * refill_per_ms)
last_refill = now_ms

local allowed = 0
local retry_after_ms = 0
if tokens >= 1 then
	allowed = 1
	tokens = tokens - 1
elseif refill_per_ms > 0 then
	retry_after_ms = math.ceil((1 - tokens) / refill_per_ms)
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)
return { allowed, math.floor(tokens), retry_after_ms }
`)

// RateLimiter guards reservation creation per client IP. Redis holds the
// buckets when configured; otherwise, or when Redis errors, an in-process
// limiter keeps the same budget per instance.
type RateLimiter struct {
	rdb      *redis.Client
	clock    clock.Clock
	capacity int
	refill   float64
	ttl      time.Duration

	mu        sync.Mutex
	local     map[string]*localBucket
	lastSweep time.Time
}

// localBucket idle for ttl has refilled completely, so dropping it loses nothing.
type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, clk clock.Clock) *RateLimiter {
	ttl := time.Minute
	if cfg.RefillPerSec > 0 {
		// long enough for an empty bucket to refill completely
		ttl = max(ttl, time.Duration(float64(cfg.Capacity)/cfg.RefillPerSec*float64(time.Second))*2)
	}
	return &RateLimiter{
		rdb:       rdb,
		clock:     clk,
		capacity:  cfg.Capacity,
		refill:    cfg.RefillPerSec,
		ttl:       ttl,
		local:     make(map[string]*localBucket),
		lastSweep: clk.Now(),
	}
}

func (l *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.capacity <= 0 {
			c.Next()
			return
		}
		key := rateKeyPrefix + ":" + scope + ":" + c.ClientIP()

		allowed, remaining, retryAfter := l.take(c, key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, please try again later", nil)
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) take(c *gin.Context, key string) (bool, int, time.Duration) {
	if l.rdb != nil {
		args := []any{
			l.clock.Now().UnixMilli(),
			l.capacity,
			l.refill / 1000,
			int64(l.ttl / time.Second),
		}
		vals, err := tokenBucketScript.Run(c.Request.Context(), l.rdb, []string{key}, args...).Int64Slice()
		if err == nil && len(vals) == 3 {
			return vals[0] == 1, int(vals[1]), time.Duration(vals[2]) * time.Millisecond
		}
		if err != nil {
			slog.Warn("redis rate limiter unavailable, using local bucket", "key", key, "error", err.Error())
		}
	}
	return l.takeLocal(key)
}

func (l *RateLimiter) takeLocal(key string) (bool, int, time.Duration) {
	now := l.clock.Now()

	l.mu.Lock()
	l.sweepLocked(now)
	b, ok := l.local[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(rate.Limit(l.refill), l.capacity)}
		l.local[key] = b
	}
	b.lastSeen = now
	lim := b.limiter
	l.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, 0, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(lim.TokensAt(now)), 0
}

// sweepLocked evicts idle buckets at most once per ttl.
func (l *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.ttl {
		return
	}
	for key, b := range l.local {
		if now.Sub(b.lastSeen) >= l.ttl {
			delete(l.local, key)
		}
	}
	l.lastSweep = now
}
