package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cavaltron-backend/config"
	"cavaltron-backend/internal/delivery/http/response"
	"cavaltron-backend/pkg/redis"
	"cavaltron-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for one rate limiter
type RateLimitConfig struct {
	// Requests per window; zero or less disables the limiter
	Limit int
	// Fixed window length
	Window time.Duration
	// Key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix, keeps limiters apart in a shared store
	KeyPrefix string
	// Reject requests when Redis errors instead of counting in memory
	FailClosed bool
}

// GlobalRateLimitConfig covers every route
func GlobalRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.RateLimitGlobalThreshold,
		Window:    time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
	}
}

// ContactRateLimitConfig is the strict limit on contact submissions. Each
// accepted submission sends an email, so it fails closed.
func ContactRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:      cfg.RateLimitContactThreshold,
		Window:     time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix:  "rl:contact:",
		FailClosed: true,
	}
}

// counter counts hits on a key inside a fixed window
type counter interface {
	hit(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// windowScript increments atomically and sets the TTL on the first hit.
// Returns {count, ttl_seconds}.
var windowScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('TTL', KEYS[1])}
`)

type redisCounter struct {
	client goredis.Scripter
}

func (r redisCounter) hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	res, err := windowScript.Run(ctx, r.client, []string{key}, windowSeconds(window)).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) < 2 {
		return 0, time.Time{}, fmt.Errorf("redis rate limit: unexpected result %v", res)
	}
	return int(res[0]), time.Now().Add(time.Duration(res[1]) * time.Second), nil
}

// windowSeconds is the EXPIRE argument for window. EXPIRE 0 deletes the key,
// so sub-second windows round up to one second.
func windowSeconds(window time.Duration) int {
	secs := int(math.Ceil(window.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

type fixedWindow struct {
	count   int
	resetAt time.Time
}

// memoryCounter is the per-process fallback. Expired windows are swept
// lazily on access.
type memoryCounter struct {
	mu        sync.Mutex
	windows   map[string]*fixedWindow
	now       func() time.Time
	lastSweep time.Time
}

const sweepInterval = 5 * time.Minute

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{windows: make(map[string]*fixedWindow), now: time.Now}
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > sweepInterval {
		for k, w := range m.windows {
			if now.After(w.resetAt) {
				delete(m.windows, k)
			}
		}
		m.lastSweep = now
	}

	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &fixedWindow{resetAt: now.Add(window)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

// RateLimitMiddleware limits requests per key. It counts in Redis when the
// shared client is up at construction time and in memory otherwise.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	var primary counter
	if c := redis.Client(); c != nil {
		primary = redisCounter{client: c}
	}
	return newRateLimiter(cfg, primary, newMemoryCounter())
}

func newRateLimiter(cfg RateLimitConfig, primary counter, fallback *memoryCounter) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	return func(c *gin.Context) {
		if cfg.Limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		var count int
		var resetAt time.Time
		var err error
		if primary != nil {
			count, resetAt, err = primary.hit(ctx, key, cfg.Window)
		}
		if primary == nil || err != nil {
			if err != nil && cfg.FailClosed {
				logRateLimitError(c, err)
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			count, resetAt, _ = fallback.hit(ctx, key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(ctx, requestMeta(c))
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func requestMeta(c *gin.Context) security.RequestMeta {
	return security.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString("RequestID"),
		Endpoint:  c.FullPath(),
	}
}

func logRateLimitError(c *gin.Context, err error) {
	security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
		Event:       security.EventRateLimitTriggered,
		SubjectType: "system",
		Meta:        requestMeta(c),
		Details:     map[string]interface{}{"error_type": "redis_error", "error": err.Error()},
	})
}
