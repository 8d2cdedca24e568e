package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"apply-tracker/pkg/response"
)

// Auth validates the static API key carried in X-API-Key or as a bearer
// token. With no key configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				key = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "auth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
