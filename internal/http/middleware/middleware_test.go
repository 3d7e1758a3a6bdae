package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docdesk/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace unsafe request id", func(t *testing.T) {
		for _, bad := range []string{"id with spaces", "id\"quoted", strings.Repeat("a", 129)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Equal(t, "http_request", logData["msg"])
}

func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "backend failed")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var logData map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, "error", logData["level"])
	assert.Equal(t, float64(fiber.StatusBadGateway), logData["status"])
}

func TestRateLimiter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	assert.NoError(t, err)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(NewRateLimiter(0.001, 2, m).Handler())
	app.Post("/pdf/merge", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, _ := app.Test(httptest.NewRequest("POST", "/pdf/merge", nil))
		codes = append(codes, resp.StatusCode)
		if resp.StatusCode == fiber.StatusTooManyRequests {
			assert.Equal(t, "1", resp.Header.Get(fiber.HeaderRetryAfter))
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	n, err := testutil.GatherAndCount(reg, "docdesk_rate_limit_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRateLimiter_Disabled(t *testing.T) {
	app := fiber.New()
	app.Use(NewRateLimiter(0, 0, nil).Handler())
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, _ := app.Test(httptest.NewRequest("GET", "/x", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestRateLimiter_DropsIdleBuckets(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 1, nil)
	l.now = func() time.Time { return clock }

	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Use(l.Handler())
	app.Post("/pdf/merge", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	from := func(ip string) int {
		req := httptest.NewRequest("POST", "/pdf/merge", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, ip)
		resp, _ := app.Test(req)
		return resp.StatusCode
	}
	buckets := func() int {
		n := 0
		l.buckets.Range(func(_, _ any) bool { n++; return true })
		return n
	}

	assert.Equal(t, fiber.StatusOK, from("10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, from("10.0.0.2"))
	assert.Equal(t, fiber.StatusTooManyRequests, from("10.0.0.1"))
	assert.Equal(t, 2, buckets())

	clock = clock.Add(minIdle / 2)
	assert.Equal(t, fiber.StatusOK, from("10.0.0.2"))
	assert.Equal(t, 2, buckets(), "no sweep before a full idle period has passed")

	clock = clock.Add(minIdle/2 + time.Second)
	assert.Equal(t, fiber.StatusOK, from("10.0.0.3"))
	assert.Equal(t, 2, buckets(), "10.0.0.1 idle past the window is dropped")
	_, ok := l.buckets.Load("10.0.0.1")
	assert.False(t, ok)
	_, ok = l.buckets.Load("10.0.0.2")
	assert.True(t, ok)

	assert.Equal(t, fiber.StatusOK, from("10.0.0.1"))
}

func TestNewRateLimiter_IdleCoversRefill(t *testing.T) {
	assert.Equal(t, minIdle, NewRateLimiter(5, 10, nil).idle)
	assert.Equal(t, 4000*time.Second, NewRateLimiter(0.5, 2000, nil).idle)
}
