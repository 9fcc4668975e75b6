package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "meeting-room-booking/internal/calendar/delivery/http"
)

// setupCalendarDomain registers the room and event routes at the root.
//
// The usecase is built in main so the repository choice (google or mock)
// stays a process-level decision.
func (srv *HTTPServer) setupCalendarDomain(ctx context.Context, r gin.IRouter) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(r, h, srv.mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
