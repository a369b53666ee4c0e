package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transaction-analyzer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrozenLimiter(rps int) (*RateLimiter, *time.Time) {
	rl := NewRateLimiter(rps)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func serve(e *echo.Echo, rl *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	rl, _ := newFrozenLimiter(2)

	for i := 0; i < 4; i++ {
		rec := serve(e, rl, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := serve(e, rl, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(errors.SystemRateLimitExceeded), body.Error.Code)
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	e := echo.New()
	rl, now := newFrozenLimiter(1)

	assert.Equal(t, http.StatusOK, serve(e, rl, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, serve(e, rl, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, rl, "10.0.0.1:1").Code)

	*now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serve(e, rl, "10.0.0.1:1").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	e := echo.New()
	rl, _ := newFrozenLimiter(1)

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		assert.Equal(t, http.StatusOK, serve(e, rl, ip).Code)
		assert.Equal(t, http.StatusOK, serve(e, rl, ip).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(e, rl, ip).Code)
	}
	assert.Equal(t, 3, rl.visitorCount())
}

func TestRateLimiter_DefaultRate(t *testing.T) {
	rl := NewRateLimiter(0)
	assert.Equal(t, float64(defaultRequestsPerSecond), float64(rl.rps))
	assert.Equal(t, defaultRequestsPerSecond*2, rl.burst)
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	e := echo.New()
	rl, now := newFrozenLimiter(5)

	serve(e, rl, "10.0.0.1:1")
	*now = now.Add(2 * time.Minute)
	serve(e, rl, "10.0.0.2:1")

	*now = now.Add(2 * time.Minute)
	rl.cleanup()

	assert.Equal(t, 1, rl.visitorCount())
	rl.mu.Lock()
	_, kept := rl.visitors["10.0.0.2"]
	rl.mu.Unlock()
	assert.True(t, kept)
}

func TestGetIP_PrefersRealIPHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	req.Header.Set("X-Real-IP", "203.0.113.7")

	assert.Equal(t, "203.0.113.7", getIP(e.NewContext(req, httptest.NewRecorder())))
}
