package middleware

import (
	"sync"
	"sync/atomic"
	"time"

	"docdesk/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// minIdle is the shortest time a client's bucket survives without requests.
const minIdle = 10 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen atomic.Int64 // unix nanos of the last request
}

// RateLimiter bounds how fast clients can start external processes.
// Each client IP gets its own token bucket. Buckets idle for longer than it
// takes them to refill are dropped, so the map tracks recent clients only.
type RateLimiter struct {
	rps     rate.Limit
	burst   int
	idle    time.Duration
	buckets sync.Map // map[string]*bucket
	swept   atomic.Int64
	metrics *metrics.Collectors
	now     func() time.Time
}

// NewRateLimiter allows rps events per second with the given burst.
// A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, m *metrics.Collectors) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	idle := minIdle
	if rps > 0 {
		// A bucket untouched this long is full again, same as a new one.
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &RateLimiter{rps: rate.Limit(rps), burst: burst, idle: idle, metrics: m, now: time.Now}
}

func (l *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	v, ok := l.buckets.Load(key)
	if !ok {
		v, _ = l.buckets.LoadOrStore(key, &bucket{lim: rate.NewLimiter(l.rps, l.burst)})
	}
	b := v.(*bucket)
	b.seen.Store(now.UnixNano())
	return b.lim
}

// sweep drops idle buckets at most once per idle period.
func (l *RateLimiter) sweep(now time.Time) {
	ts := now.UnixNano()
	last := l.swept.Load()
	if ts-last < int64(l.idle) || !l.swept.CompareAndSwap(last, ts) {
		return
	}
	l.buckets.Range(func(k, v any) bool {
		if ts-v.(*bucket).seen.Load() > int64(l.idle) {
			l.buckets.CompareAndDelete(k, v)
		}
		return true
	})
}

func (l *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.rps <= 0 {
			return c.Next()
		}

		key := c.IP()
		if key == "" {
			key = "unknown"
		}

		now := l.now()
		allowed := l.limiter(key, now).AllowN(now, 1)
		l.sweep(now)

		if !allowed {
			l.metrics.ObserveRateLimit(false)
			c.Set(fiber.HeaderRetryAfter, "1")
			rid, _ := c.Locals(RequestIDLocalKey).(string)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"request_id": rid,
				"error": fiber.Map{
					"code":    "RATE_LIMITED",
					"message": "too many processing requests",
				},
			})
		}
		l.metrics.ObserveRateLimit(true)
		return c.Next()
	}
}
