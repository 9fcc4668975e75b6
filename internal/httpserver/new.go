package httpserver

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-room-booking/internal/auth"
	"meeting-room-booking/internal/calendar"
	"meeting-room-booking/internal/middleware"
	"meeting-room-booking/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	startedAt       time.Time
	draining        atomic.Bool

	calendarProvider string

	// Cross-cutting
	mw      middleware.Middleware
	metrics *middleware.Metrics

	// Domains
	calendarUC calendar.UseCase
	authUC     auth.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// CalendarProvider names the calendar backend in health output.
	CalendarProvider string

	// Middleware
	AllowedOrigins  []string
	RateLimitPerMin int
	Metrics         *middleware.Metrics

	// Domains
	CalendarUC calendar.UseCase
	AuthUC     auth.UseCase
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		startedAt:       time.Now(),
		metrics:         cfg.Metrics,
		calendarUC:      cfg.CalendarUC,
		authUC:          cfg.AuthUC,

		calendarProvider: cfg.CalendarProvider,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		Authenticator:   cfg.AuthUC,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Metrics:         cfg.Metrics,
	})

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar usecase is required")
	}
	return nil
}
