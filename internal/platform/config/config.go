package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	// SessionSecret signs the admin session cookie, AdminToken is the shared
	// secret checked at /admin/login. Neither is involved in the anonymous
	// voter identity cookie.
	SessionSecret string `env:"SESSION_SECRET"`
	AdminToken    string `env:"ADMIN_TOKEN"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// MaxVotes is the advisory per-browser cap, surfaced to clients so their
	// local enforcement matches the server's documented policy.
	MaxVotes int `env:"MAX_VOTES" default:"12"`

	// Toggle abuse controls.
	ToggleRateCapacity int `env:"TOGGLE_RATE_CAPACITY" default:"10"`
	ToggleRatePerMin   int `env:"TOGGLE_RATE_PER_MIN" default:"30"`

	AnalyticsCacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL" default:"30s"`
	AdminSessionMaxAge time.Duration `env:"ADMIN_SESSION_MAX_AGE" default:"12h"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_URL":      cfg.RedisURL,
		"SESSION_SECRET": cfg.SessionSecret,
		"ADMIN_TOKEN":    cfg.AdminToken,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters")
	}
	if len(cfg.AdminToken) < 16 {
		return fmt.Errorf("ADMIN_TOKEN must be at least 16 characters")
	}

	if cfg.MaxVotes < 1 {
		return fmt.Errorf("MAX_VOTES must be at least 1, got %d", cfg.MaxVotes)
	}
	if cfg.ToggleRateCapacity < 1 || cfg.ToggleRatePerMin < 1 {
		return fmt.Errorf("toggle rate limits must be at least 1")
	}

	return nil
}

// IsProduction reports whether the service runs with production cookie policy
// (Secure flags on).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
