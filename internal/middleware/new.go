package middleware

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
	"google.golang.org/api/idtoken"

	"verdant-agenda/config"
	"verdant-agenda/internal/model"
	pkgLog "verdant-agenda/pkg/log"
)

// TokenValidator verifies a Google ID token and returns its payload.
type TokenValidator interface {
	Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

type googleValidator struct{}

func (googleValidator) Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, token, audience)
}

type cachedIdentity struct {
	scope     model.Scope
	expiresAt time.Time
}

// Middleware bundles the request middlewares (auth, rate limiting).
type Middleware struct {
	l         pkgLog.Logger
	authCfg   config.AuthConfig
	rlCfg     config.RateLimitConfig
	validator TokenValidator

	// tokenCache avoids re-verifying the same ID token on every request.
	tokenCache *lru.Cache[string, cachedIdentity]
	limiters   *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware set.
func New(l pkgLog.Logger, authCfg config.AuthConfig, rlCfg config.RateLimitConfig) (Middleware, error) {
	tokenCacheSize := authCfg.CacheSize
	if tokenCacheSize <= 0 {
		tokenCacheSize = 1024
	}
	tokenCache, err := lru.New[string, cachedIdentity](tokenCacheSize)
	if err != nil {
		return Middleware{}, fmt.Errorf("failed to create token cache: %w", err)
	}

	limiterCacheSize := rlCfg.CacheSize
	if limiterCacheSize <= 0 {
		limiterCacheSize = 4096
	}
	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		return Middleware{}, fmt.Errorf("failed to create limiter cache: %w", err)
	}

	return Middleware{
		l:          l,
		authCfg:    authCfg,
		rlCfg:      rlCfg,
		validator:  googleValidator{},
		tokenCache: tokenCache,
		limiters:   limiters,
	}, nil
}

// WithValidator swaps the token validator. Used by tests.
func (m Middleware) WithValidator(v TokenValidator) Middleware {
	m.validator = v
	return m
}
