package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Host           string
	Port           string
	StorageDriver  string
	DatabaseURL    string
	RedisURL       string
	JWTSecret      string
	JWTIssuer      string
	JWTTTL         time.Duration
	CORSOrigins    []string
	LoginRateLimit float64
	LoginRateBurst int
	TrustProxy     bool
	LogLevel       slog.Level
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Host:          strings.TrimSpace(os.Getenv("HOST")),
		Port:          fallback(os.Getenv("PORT"), "3333"),
		StorageDriver: strings.ToLower(fallback(os.Getenv("STORAGE_DRIVER"), StoragePostgres)),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:     fallback(os.Getenv("JWT_ISSUER"), "megasena-backend"),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
	}
	cfg.TrustProxy, _ = strconv.ParseBool(fallback(os.Getenv("TRUST_PROXY_HEADERS"), "false"))

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	if limit, err := strconv.ParseFloat(fallback(os.Getenv("LOGIN_RATE_LIMIT"), "1"), 64); err == nil && limit > 0 {
		cfg.LoginRateLimit = limit
	} else {
		cfg.LoginRateLimit = 1
	}
	if burst, err := strconv.Atoi(fallback(os.Getenv("LOGIN_RATE_BURST"), "5")); err == nil && burst > 0 {
		cfg.LoginRateBurst = burst
	} else {
		cfg.LoginRateBurst = 5
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case StorageMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
// An empty host listens on all interfaces.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseLevel(input string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
