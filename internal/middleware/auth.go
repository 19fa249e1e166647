package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/newshelton/storefront-api/internal/session"
	"github.com/newshelton/storefront-api/pkg/response"
)

// sessionKey is the context key for resolved session data
const sessionKey = "session"

// RequireSession resolves the session cookie and rejects the request
// with 401 when there is no live session. This is the only place the
// API returns a non-200 status.
func RequireSession(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			response.Unauthorized(c, "Please login first.")
			return
		}

		data, err := manager.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Please login first.")
			return
		}

		c.Set(sessionKey, data)
		c.Next()
	}
}

// OptionalSession resolves the session cookie when present but lets
// the request through either way. Checkout uses this to attribute
// orders to logged-in users without requiring login.
func OptionalSession(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil {
			if data, err := manager.Resolve(c.Request.Context(), token); err == nil {
				c.Set(sessionKey, data)
			}
		}
		c.Next()
	}
}

// SessionFromContext returns the resolved session data, if any
func SessionFromContext(c *gin.Context) (session.Data, bool) {
	if v, exists := c.Get(sessionKey); exists {
		if data, ok := v.(session.Data); ok {
			return data, true
		}
	}
	return session.Data{}, false
}
