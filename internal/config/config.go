// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/zmanim-api/internal/geo"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file

	// Authentication
	APIKey string // API key for write endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Cache. An empty RedisAddr disables caching.
	RedisAddr string
	CacheTTL  time.Duration

	// Location used when a request names none
	DefaultLatitude  float64
	DefaultLongitude float64
	DefaultElevation float64
	DefaultTimezone  string
	InIsrael         bool

	CandleLightingMinutes int
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Missing .env is fine; production sets the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []error

	cfg.Port = getEnvInt("PORT", 8080, &errs)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/zmanim.db")

	cfg.APIKey = getEnv("API_KEY", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.CacheTTL = getEnvDuration("CACHE_TTL", 6*time.Hour, &errs)

	cfg.DefaultLatitude = getEnvFloat("DEFAULT_LATITUDE", 31.778, &errs)
	cfg.DefaultLongitude = getEnvFloat("DEFAULT_LONGITUDE", 35.2354, &errs)
	cfg.DefaultElevation = getEnvFloat("DEFAULT_ELEVATION", 754, &errs)
	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", "Asia/Jerusalem")
	cfg.InIsrael = getEnvBool("IN_ISRAEL", true, &errs)

	cfg.CandleLightingMinutes = getEnvInt("CANDLE_LIGHTING_MINUTES", 18, &errs)

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL))
	}

	if _, err := c.DefaultLocation(); err != nil {
		errs = append(errs, fmt.Errorf("default location: %w", err))
	}

	if c.CandleLightingMinutes < 0 || c.CandleLightingMinutes > 120 {
		errs = append(errs, fmt.Errorf("CANDLE_LIGHTING_MINUTES must be between 0 and 120, got %d", c.CandleLightingMinutes))
	}

	return errors.Join(errs...)
}

// DefaultLocation builds the location used when a request names none.
func (c *Config) DefaultLocation() (geo.Location, error) {
	tz, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return geo.Location{}, fmt.Errorf("DEFAULT_TIMEZONE %q: %w", c.DefaultTimezone, err)
	}
	return geo.New("Default", c.DefaultLatitude, c.DefaultLongitude, c.DefaultElevation, tz)
}

// CandleLightingOffset is CandleLightingMinutes as a duration.
func (c *Config) CandleLightingOffset() time.Duration {
	return time.Duration(c.CandleLightingMinutes) * time.Minute
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// The typed readers record a parse failure in errs instead of silently
// falling back, so a typo in the environment is reported at startup.

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a number, got %q", key, value))
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be true or false, got %q", key, value))
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a duration like 6h, got %q", key, value))
		return defaultValue
	}
	return d
}
