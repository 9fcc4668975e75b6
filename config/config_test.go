package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, ProviderMock, cfg.Calendar.Provider)
	assert.Equal(t, 10*time.Minute, cfg.Calendar.RoomsCacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, []string{"http://localhost:3000", "chrome-extension://*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENVIRONMENT_NAME", "production")
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_OAUTH_ALLOWED_DOMAINS", "example.com, corp.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGoogle, cfg.Calendar.Provider, "production defaults to google")
	assert.Equal(t, []string{"example.com", "corp.example.com"}, cfg.GoogleOAuth.AllowedDomains)
}

func TestLoadValidation(t *testing.T) {
	tcs := []struct {
		name string
		env  map[string]string
	}{
		{"missing jwt secret", map[string]string{}},
		{"google without oauth client", map[string]string{"JWT_SECRET": "s", "CALENDAR_PROVIDER": "google"}},
		{"unknown provider", map[string]string{"JWT_SECRET": "s", "CALENDAR_PROVIDER": "outlook"}},
		{"mock in production", map[string]string{"JWT_SECRET": "s", "ENVIRONMENT_NAME": "production", "CALENDAR_PROVIDER": "mock"}},
		{"production without oauth client", map[string]string{"JWT_SECRET": "s", "ENVIRONMENT_NAME": "production"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
