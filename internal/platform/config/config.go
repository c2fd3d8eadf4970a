package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures process configuration for the loader, the API client, and
// the HTTP surface. Values come from the environment so main stays lean.
type Config struct {
	// DatabaseURL selects the backend: postgres:// / postgresql:// DSNs use
	// PostgreSQL, anything else is treated as a SQLite file path
	// (":memory:" included).
	DatabaseURL string

	HTTPAddr string
	LogLevel string

	API APIConfig
}

// APIConfig holds D&B Direct+ client settings.
type APIConfig struct {
	Key                string
	Secret             string
	BaseURL            string
	Timeout            time.Duration
	MaxRetries         int
	RateLimitPerMinute int
	OutputDir          string
}

// FromEnv builds a Config from environment variables, with the same defaults
// the original deployment used.
func FromEnv() Config {
	return Config{
		DatabaseURL: getenv("DATABASE_URL", "datablock.db"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		API: APIConfig{
			Key:                os.Getenv("DNB_API_KEY"),
			Secret:             os.Getenv("DNB_API_SECRET"),
			BaseURL:            getenv("DNB_API_URL", "https://plus.dnb.com"),
			Timeout:            time.Duration(getint("DNB_API_TIMEOUT", 30)) * time.Second,
			MaxRetries:         getint("DNB_API_MAX_RETRIES", 3),
			RateLimitPerMinute: getint("DNB_RATE_LIMIT_PER_MINUTE", 60),
			OutputDir:          getenv("DNB_OUTPUT_DIR", "dnb_data"),
		},
	}
}

// HasAPICredentials reports whether the Direct+ client can authenticate.
func (c Config) HasAPICredentials() bool {
	return c.API.Key != "" && c.API.Secret != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
