package http

import (
	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/middleware"
)

// RegisterRoutes maps the /auth routes. Session checks and logout need a
// valid access token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/oauth-url", h.OAuthURL)
	rg.POST("/oauth/callback", h.Callback)
	rg.POST("/refresh-token", h.RefreshToken)

	rg.GET("/validate-session", mw.Auth(), h.ValidateSession)
	rg.POST("/logout", mw.Auth(), h.Logout)
}
