package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Calendar providers.
const (
	ProviderGoogle = "google"
	ProviderMock   = "mock"
)

// EnvironmentProduction is the environment name that enables production checks.
const EnvironmentProduction = "production"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Booking specifics
	GoogleOAuth GoogleOAuthConfig
	Calendar    CalendarConfig
	JWT         JWTConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int
}

type GoogleOAuthConfig struct {
	ClientID             string
	ClientSecret         string
	RedirectURL          string
	ExtensionRedirectURL string // redirect registered for the browser extension
	AllowedDomains       []string
}

type CalendarConfig struct {
	Provider      string // google or mock
	Customer      string // Workspace customer for the room directory
	RoomsCacheTTL time.Duration
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = getList("cors.allowed_origins")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Google OAuth
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURL = viper.GetString("google_oauth.redirect_url")
	cfg.GoogleOAuth.ExtensionRedirectURL = viper.GetString("google_oauth.extension_redirect_url")
	cfg.GoogleOAuth.AllowedDomains = getList("google_oauth.allowed_domains")

	// Calendar
	cfg.Calendar.Provider = strings.ToLower(viper.GetString("calendar.provider"))
	if cfg.Calendar.Provider == "" {
		cfg.Calendar.Provider = ProviderMock
		if cfg.Environment.Name == EnvironmentProduction {
			cfg.Calendar.Provider = ProviderGoogle
		}
	}
	cfg.Calendar.Customer = viper.GetString("calendar.customer")
	cfg.Calendar.RoomsCacheTTL = viper.GetDuration("calendar.rooms_cache_ttl")

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000,chrome-extension://*")

	viper.SetDefault("google_oauth.redirect_url", "http://localhost:3000/auth/callback")

	viper.SetDefault("calendar.customer", "my_customer")
	viper.SetDefault("calendar.rooms_cache_ttl", "10m")

	viper.SetDefault("jwt.issuer", "meeting-room-booking")
	viper.SetDefault("jwt.access_ttl", "15m")
	viper.SetDefault("jwt.refresh_ttl", "168h")
}

func (cfg *Config) validate() error {
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	switch cfg.Calendar.Provider {
	case ProviderGoogle:
		if cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" {
			return errors.New("google_oauth.client_id and google_oauth.client_secret are required for the google provider")
		}
	case ProviderMock:
		if cfg.Environment.Name == EnvironmentProduction {
			return errors.New("calendar.provider mock is not allowed in production")
		}
	default:
		return fmt.Errorf("calendar.provider %q is not one of %s, %s", cfg.Calendar.Provider, ProviderGoogle, ProviderMock)
	}
	return nil
}

// getList reads a list that may come from yaml or from a comma separated
// env var, since viper does not split env values.
func getList(key string) []string {
	var raw []string
	switch v := viper.Get(key).(type) {
	case string:
		raw = strings.Split(v, ",")
	default:
		raw = viper.GetStringSlice(key)
	}

	var out []string
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
