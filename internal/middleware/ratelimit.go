package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"verdant-agenda/pkg/response"
)

// RateLimit throttles requests per authenticated user. Intended for the
// suggestion endpoint, where every request costs an LLM call.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMinute := m.rlCfg.SuggestionsPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := m.rlCfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(float64(perMinute) / 60.0)

	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for user %s", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
