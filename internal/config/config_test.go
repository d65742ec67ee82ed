package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	keys := []string{
		"HOST", "PORT", "STORAGE_DRIVER", "DATABASE_URL", "REDIS_URL", "JWT_SECRET", "JWT_ISSUER",
		"JWT_TTL_MINUTES", "CORS_ALLOWED_ORIGINS", "LOGIN_RATE_LIMIT", "LOGIN_RATE_BURST", "LOG_LEVEL",
		"TRUST_PROXY_HEADERS",
	}
	for _, key := range keys {
		t.Setenv(key, values[key])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/megasena",
		"JWT_SECRET":   "secret",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, ":3333", cfg.HTTPAddress())
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "megasena-backend", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 1.0, cfg.LoginRateLimit)
	assert.Equal(t, 5, cfg.LoginRateBurst)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.TrustProxy)
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"HOST":                 "127.0.0.1",
		"PORT":                 "8080",
		"STORAGE_DRIVER":       "MEMORY",
		"JWT_SECRET":           "secret",
		"JWT_TTL_MINUTES":      "15",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
		"LOGIN_RATE_LIMIT":     "0.5",
		"LOGIN_RATE_BURST":     "2",
		"LOG_LEVEL":            "debug",
		"REDIS_URL":            "redis://localhost:6379/0",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddress())
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 0.5, cfg.LoginRateLimit)
	assert.Equal(t, 2, cfg.LoginRateBurst)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.TrustProxy)
}

func TestLoadInvalidTTLFallsBack(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_DRIVER":  "memory",
		"JWT_SECRET":      "secret",
		"JWT_TTL_MINUTES": "-3",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}

func TestLoadRequiredValues(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		errMsg string
	}{
		{
			name:   "missing database url",
			values: map[string]string{"JWT_SECRET": "secret"},
			errMsg: "DATABASE_URL is required",
		},
		{
			name:   "missing secret",
			values: map[string]string{"STORAGE_DRIVER": "memory"},
			errMsg: "JWT_SECRET is required",
		},
		{
			name:   "unknown driver",
			values: map[string]string{"STORAGE_DRIVER": "sqlite", "JWT_SECRET": "secret"},
			errMsg: `unknown STORAGE_DRIVER "sqlite"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.values)
			_, err := Load()
			require.Error(t, err)
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}
