package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-room-booking/config"
	_ "meeting-room-booking/docs" // Swagger docs
	authUC "meeting-room-booking/internal/auth/usecase"
	"meeting-room-booking/internal/calendar/repository"
	googleRepo "meeting-room-booking/internal/calendar/repository/google"
	mockRepo "meeting-room-booking/internal/calendar/repository/mock"
	calendarUC "meeting-room-booking/internal/calendar/usecase"
	"meeting-room-booking/internal/httpserver"
	"meeting-room-booking/internal/middleware"
	"meeting-room-booking/pkg/jwt"
	"meeting-room-booking/pkg/log"
)

const metricsNamespace = "booking"

// @title       Meeting Room Booking API
// @description Books Google Workspace conference rooms through the caller's Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Room Booking API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar provider: %s", cfg.Calendar.Provider)

	// 3. Auth domain
	tokens, err := jwt.New(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		logger.Error(ctx, "Failed to initialize token manager: ", err)
		return
	}

	var provider authUC.Provider
	if cfg.GoogleOAuth.ClientID != "" {
		provider = authUC.NewGoogleProvider(authUC.GoogleConfig{
			ClientID:             cfg.GoogleOAuth.ClientID,
			ClientSecret:         cfg.GoogleOAuth.ClientSecret,
			RedirectURL:          cfg.GoogleOAuth.RedirectURL,
			ExtensionRedirectURL: cfg.GoogleOAuth.ExtensionRedirectURL,
		})
	} else {
		if cfg.Environment.Name == config.EnvironmentProduction {
			logger.Error(ctx, "Google OAuth must be configured in production")
			return
		}
		logger.Warn(ctx, "Google OAuth not configured, the authorization code is read as the user's email")
		provider = authUC.NewLocalProvider(cfg.GoogleOAuth.RedirectURL)
	}

	authUseCase := authUC.New(logger, provider, tokens, authUC.Config{
		AccessTTL:      cfg.JWT.AccessTTL,
		RefreshTTL:     cfg.JWT.RefreshTTL,
		AllowedDomains: cfg.GoogleOAuth.AllowedDomains,
	})

	// 4. Calendar domain
	var repo repository.Repository
	switch cfg.Calendar.Provider {
	case config.ProviderGoogle:
		repo = googleRepo.New(logger, nil)
	default:
		repo = mockRepo.New(logger, nil)
		logger.Warn(ctx, "Using the in-memory calendar; bookings are lost on restart")
	}

	calendarUseCase := calendarUC.New(logger, repo, calendarUC.Config{
		Customer:      cfg.Calendar.Customer,
		RoomsCacheTTL: cfg.Calendar.RoomsCacheTTL,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		CalendarProvider: cfg.Calendar.Provider,
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		Metrics:          middleware.NewMetrics(metricsNamespace),
		CalendarUC:       calendarUseCase,
		AuthUC:           authUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
