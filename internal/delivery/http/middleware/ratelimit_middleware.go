package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RateLimitMiddleware throttles abusive clients using the shared Redis
// limiter. The key is the client IP so a misbehaving sender cannot exhaust
// the budget of everyone behind the endpoint.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit consumes one token from the client's budget before the handler runs.
// Limiter backend failures let the request through; dropping legitimate
// traffic is worse than briefly losing the throttle.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		res, err := m.limiter.Allow(ctx, c.RealIP())
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
			logger.Warn("Rate limiter unavailable, allowing request",
				slog.Any("error", err),
				slog.String("remote_ip", c.RealIP()),
			)

			return next(c)
		}

		if res.Allowed <= 0 {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))

			return errors.WithStack(domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
