package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	domainerrors "staffing/internal/domain/errors"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRequests = 10
	defaultRateLimitPeriod   = time.Minute

	localEntryTTL        = 10 * time.Minute
	localCleanupInterval = 5 * time.Minute
)

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// RateLimiter bounds requests per user and endpoint. Redis holds the shared
// counters; a process-local token bucket takes over when Redis is absent or failing.
type RateLimiter struct {
	enabled  bool
	failOpen bool
	limit    redis_rate.Limit
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	logger   *slog.Logger
}

// NewRateLimiter is the constructor for RateLimiter.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := &RateLimiter{
		limit:    redis_rate.Limit{Rate: defaultRateLimitRequests, Burst: defaultRateLimitRequests, Period: defaultRateLimitPeriod},
		fallback: newLocalLimiter(),
		logger:   params.Logger,
	}

	if cfg := params.Config.RateLimit; cfg != nil {
		rl.enabled = cfg.Enabled
		rl.failOpen = cfg.FailOpen
		if cfg.Requests > 0 {
			rl.limit.Rate = cfg.Requests
			rl.limit.Burst = cfg.Requests
		}
		if cfg.Period > 0 {
			rl.limit.Period = cfg.Period
		}
	}

	if params.Redis != nil {
		rl.limiter = redis_rate.NewLimiter(params.Redis)
	}

	return rl
}

// Limit is the echo middleware. It must run after Authenticate to key by user.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := rateLimitKey(c)
		res, err := rl.allow(c.Request().Context(), key)
		if err != nil {
			if rl.failOpen {
				deliverycontext.Logger(c.Request().Context(), rl.logger).
					Warn("Rate limiter error, failing open", slog.Any("error", err), slog.String("key", key))

				return next(c)
			}

			return errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
		}

		setRateLimitHeaders(c, res, rl.limit)

		if res.Allowed == 0 {
			retryAfter := max(int(math.Ceil(res.RetryAfter.Seconds())), 1)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return errors.Wrapf(domainerrors.ErrRateLimited, "retry after %d seconds", retryAfter)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	if rl.limiter != nil {
		res, err := rl.limiter.Allow(ctx, key, rl.limit)
		if err == nil {
			return res, nil
		}

		deliverycontext.Logger(ctx, rl.logger).
			Warn("Redis rate limiter failed, using local limiter", slog.Any("error", err))
	}

	return rl.fallback.allow(key, rl.limit, time.Now())
}

// rateLimitKey keys by user and normalized endpoint, falling back to the client IP.
func rateLimitKey(c echo.Context) string {
	subject := "ip:" + c.RealIP()
	if userID, ok := GetUserID(c); ok {
		subject = "user:" + userID.String()
	}

	return fmt.Sprintf("ratelimit:%s:endpoint:%s", subject, normalizeEndpoint(c.Request().URL.Path))
}

func normalizeEndpoint(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if _, err := uuid.Parse(part); err == nil {
			parts[i] = "{id}"
		}
	}

	return "/" + strings.Join(parts, "/")
}

func setRateLimitHeaders(c echo.Context, res *redis_rate.Result, limit redis_rate.Limit) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// localLimiter is an in-process token bucket per key. Idle entries are swept on access.
type localLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{entries: make(map[string]*limiterEntry)}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit, now time.Time) (*redis_rate.Result, error) {
	if limit.Period <= 0 || limit.Rate <= 0 {
		return nil, errors.Errorf("invalid rate limit %d per %s", limit.Rate, limit.Period)
	}

	perSecond := float64(limit.Rate) / limit.Period.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(perSecond), limit.Burst)}
		l.entries[key] = entry
	}
	entry.lastAccess = now

	allowed := entry.limiter.AllowN(now, 1)
	interval := time.Duration(float64(time.Second) / perSecond)

	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  max(int(entry.limiter.TokensAt(now)), 0),
		RetryAfter: -1,
		ResetAfter: interval,
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = interval
	}

	return res, nil
}

func (l *localLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < localCleanupInterval {
		return
	}
	l.lastSweep = now

	for key, entry := range l.entries {
		if now.Sub(entry.lastAccess) > localEntryTTL {
			delete(l.entries, key)
		}
	}
}
