package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "travel")
	t.Setenv("POSTGRES_PASSWORD", "p@ss word")
	t.Setenv("POSTGRES_DB", "travelease")
}

func TestNewDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ROUTE_PREVIEW_ENABLED", "")
	t.Setenv("CATALOG_TTL", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicBaseURL)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Auth.NavStateTTL)
	assert.Equal(t, time.Minute, cfg.Catalog.TTL)
	assert.False(t, cfg.Features.RoutePreview)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestNewReadsOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PUBLIC_BASE_URL", "https://travelease.example/")
	t.Setenv("AUTH_SESSION_TTL", "2h")
	t.Setenv("ROUTE_PREVIEW_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPPORT_EMAIL", "help@travelease.example")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "https://travelease.example", cfg.Server.PublicBaseURL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.True(t, cfg.Features.RoutePreview)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "help@travelease.example", cfg.Mail.SupportEmail)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"missing user", "POSTGRES_USER", "", "missing POSTGRES_USER"},
		{"bad port", "SERVER_PORT", "eighty", "invalid SERVER_PORT"},
		{"bad duration", "AUTH_RESET_TTL", "soon", "invalid AUTH_RESET_TTL"},
		{"bad flag", "METRICS_ENABLED", "maybe", "invalid METRICS_ENABLED"},
		{"bad level", "LOG_LEVEL", "loud", "invalid LOG_LEVEL"},
		{"zero limit", "AUTH_SIGNIN_LIMIT", "0", "rate limits must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			_, err := New()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config.New: ")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := PostgresConfig{User: "travel", Password: "p@ss word", Name: "travelease", Host: "db", Port: 5432, SSLMode: "disable"}

	assert.Equal(t, "postgres://travel:p%40ss%20word@db:5432/travelease?sslmode=disable", c.DSN())
}
