package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffing/config"
	domainerrors "staffing/internal/domain/errors"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newLimitContext(path string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(contextKeyUserID, userID)
	}

	return c, rec
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(RateLimiterParams{Config: &config.Config{}, Logger: discardLogger})

	assert.False(t, rl.enabled)
	assert.Equal(t, redis_rate.Limit{Rate: 10, Burst: 10, Period: time.Minute}, rl.limit)
	assert.Nil(t, rl.limiter)
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	rl := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: false, Requests: 1, Period: time.Hour}},
		Logger: discardLogger,
	})

	for range 3 {
		c, rec := newLimitContext("/api/v1/shifts/"+uuid.NewString()+"/cancel", uuid.New())
		require.NoError(t, rl.Limit(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_LocalFallbackLimitsPerUser(t *testing.T) {
	rl := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Requests: 2, Period: time.Hour}},
		Logger: discardLogger,
	})
	userID := uuid.New()

	for range 2 {
		c, rec := newLimitContext("/api/v1/shifts/"+uuid.NewString()+"/cancel", userID)
		require.NoError(t, rl.Limit(okHandler)(c))
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	c, rec := newLimitContext("/api/v1/shifts/"+uuid.NewString()+"/cancel", userID)
	err := rl.Limit(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// another worker has a budget of their own
	c, _ = newLimitContext("/api/v1/shifts/"+uuid.NewString()+"/cancel", uuid.New())
	assert.NoError(t, rl.Limit(okHandler)(c))
}

func TestRateLimiter_LimiterErrors(t *testing.T) {
	broken := func(failOpen bool) *RateLimiter {
		return &RateLimiter{
			enabled:  true,
			failOpen: failOpen,
			limit:    redis_rate.Limit{},
			fallback: newLocalLimiter(),
			logger:   discardLogger,
		}
	}

	c, rec := newLimitContext("/api/v1/shifts/x/cancel", uuid.New())
	require.NoError(t, broken(true).Limit(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newLimitContext("/api/v1/shifts/x/cancel", uuid.New())
	assert.ErrorIs(t, broken(false).Limit(okHandler)(c), domainerrors.ErrServiceUnavailable)
}

func TestRateLimitKey(t *testing.T) {
	userID := uuid.New()
	shiftPath := "/api/v1/shifts/" + uuid.NewString() + "/cancel"

	c, _ := newLimitContext(shiftPath, userID)
	assert.Equal(t, "ratelimit:user:"+userID.String()+":endpoint:/api/v1/shifts/{id}/cancel", rateLimitKey(c))

	c, _ = newLimitContext(shiftPath, uuid.Nil)
	assert.Equal(t, "ratelimit:ip:192.0.2.1:endpoint:/api/v1/shifts/{id}/cancel", rateLimitKey(c))
}

func TestLocalLimiter_RefillsAndSweeps(t *testing.T) {
	l := newLocalLimiter()
	limit := redis_rate.Limit{Rate: 1, Burst: 1, Period: time.Minute}
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	res, err := l.allow("k", limit, now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)

	res, err = l.allow("k", limit, now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Allowed)
	assert.Equal(t, time.Minute, res.RetryAfter)

	res, err = l.allow("k", limit, now.Add(61*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)

	_, err = l.allow("other", limit, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.NotContains(t, l.entries, "k")
	assert.Contains(t, l.entries, "other")
}
