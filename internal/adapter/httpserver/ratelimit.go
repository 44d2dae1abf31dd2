package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/metrics"
	apperrors "github.com/erwinjamescodes/sinotoriables/internal/platform/errors"
)

// ipLimitConfig describes one per-IP throttle. It sits in front of the
// per-browser token bucket in Redis and catches clients that rotate cookies.
type ipLimitConfig struct {
	ratePerSecond float64
	burst         int

	// rejectReason labels TogglesRejectedTotal on denial; empty means the
	// throttle guards a surface that is not a toggle and records nothing.
	rejectReason string
}

// visitor entries are dropped after this idle period
const ipLimitExpiry = 5 * time.Minute

func newIPRateLimiter(cfg ipLimitConfig) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.ratePerSecond),
			Burst:     cfg.burst,
			ExpiresIn: ipLimitExpiry,
		},
	)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if cfg.rejectReason != "" {
				metrics.TogglesRejectedTotal.WithLabelValues(cfg.rejectReason).Inc()
			}
			// the error middleware renders this as a structured 429
			return apperrors.RateLimitedError("rate limit exceeded")
		},
	})
}
