package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadmatch/internal/models"
)

// AuthCookieName is the session cookie set on login and checked on every
// protected route.
const AuthCookieName = "auth_token"

// RequestIDHeader carries the correlation id for log diagnostics.
const RequestIDHeader = "X-Request-ID"

// RequireAuth rejects requests that lack the session cookie.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
			return
		}
		c.Next()
	}
}

// RequestID tags each request with a correlation id, honoring one supplied
// by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
