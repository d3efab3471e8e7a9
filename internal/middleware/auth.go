package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"verdant-agenda/internal/model"
	"verdant-agenda/pkg/response"
)

const scopeKey = "scope"

// devUserHeader carries the caller identity when auth is disabled.
const devUserHeader = "X-User-ID"

// Auth authenticates the request and stores the caller's model.Scope in the
// gin context. With auth disabled, identity comes from the X-User-ID header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authCfg.Disabled {
			uid := strings.TrimSpace(c.GetHeader(devUserHeader))
			if uid == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set(scopeKey, model.Scope{UserID: uid})
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if cached, ok := m.tokenCache.Get(token); ok && time.Now().Before(cached.expiresAt) {
			c.Set(scopeKey, cached.scope)
			c.Next()
			return
		}

		payload, err := m.validator.Validate(c.Request.Context(), token, m.authCfg.Audience)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "auth: token validation failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{UserID: payload.Subject}
		if email, ok := payload.Claims["email"].(string); ok {
			sc.Email = email
		}

		m.tokenCache.Add(token, cachedIdentity{
			scope:     sc,
			expiresAt: time.Unix(payload.Expires, 0),
		})

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the authenticated scope set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
