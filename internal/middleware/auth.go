package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/model"
	"meeting-room-booking/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires a valid access token and stores the caller's scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" || m.auth == nil {
			response.Unauthorized(c)
			return
		}

		sc, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
