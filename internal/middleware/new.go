package middleware

import (
	"context"

	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/log"
)

// Authenticator resolves an access token to the caller's scope.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.Scope, error)
}

// Config is the dependency bag passed to New().
type Config struct {
	Authenticator   Authenticator
	AllowedOrigins  []string
	RateLimitPerMin int
	Metrics         *Metrics
}

type Middleware struct {
	l              log.Logger
	auth           Authenticator
	allowedOrigins []string
	limiter        *rateLimiter
	metrics        *Metrics
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		auth:           cfg.Authenticator,
		allowedOrigins: cfg.AllowedOrigins,
		metrics:        cfg.Metrics,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
