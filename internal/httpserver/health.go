package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "meeting-room-booking/pkg/errors"
	"meeting-room-booking/pkg/response"
)

const (
	ServiceName    = "meeting-room-booking"
	ServiceVersion = "1.0.0"
)

var errDraining = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")

// healthCheck describes the running instance.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"service":          ServiceName,
		"version":          ServiceVersion,
		"environment":      srv.environment,
		"calendarProvider": srv.calendarProvider,
		"uptimeSeconds":    int64(time.Since(srv.startedAt).Seconds()),
	})
}

// readyCheck fails with 503 once Run has started draining, so load
// balancers stop routing new requests here.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.draining.Load() {
		response.Error(c, errDraining)
		return
	}
	response.OK(c, gin.H{
		"service":          ServiceName,
		"calendarProvider": srv.calendarProvider,
	})
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"service": ServiceName})
}
