// Package ratelimit provides the Redis-backed request limiter shared by all
// instances of the service.
package ratelimit

import (
	"context"
	"log/slog"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultRequestsPerMinute = 60

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Limiter wraps a redis_rate sliding-window limiter. A disabled limiter
// allows everything, so callers never need to special-case configuration.
type Limiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
	logger  *slog.Logger
}

// New creates the shared limiter. When rate limiting is not enabled in the
// configuration no Redis connection is made and every request is allowed.
func New(params Params) (*Limiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting not configured, requests are unlimited")

		return &Limiter{logger: params.Logger}, nil
	}

	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	params.Logger.Info("Redis rate limiter initialized",
		slog.String("addr", cfg.Addr),
		slog.Int("requestsPerMinute", perMinute),
	)

	return &Limiter{
		limiter: redis_rate.NewLimiter(rdb),
		limit:   redis_rate.PerMinute(perMinute),
		logger:  params.Logger,
	}, nil
}

// Enabled reports whether a backing Redis limiter is configured.
func (l *Limiter) Enabled() bool {
	return l.limiter != nil
}

// Allow consumes one token from the key's sliding window budget.
func (l *Limiter) Allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	if l.limiter == nil {
		return &redis_rate.Result{Allowed: 1, Limit: l.limit}, nil
	}

	res, err := l.limiter.Allow(ctx, key, l.limit)
	if err != nil {
		return nil, errors.Wrap(err, "rate limiter query failed")
	}

	return res, nil
}
