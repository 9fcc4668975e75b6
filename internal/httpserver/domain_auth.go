package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "meeting-room-booking/internal/auth/delivery/http"
)

// setupAuthDomain registers the OAuth login and session routes under /auth.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
