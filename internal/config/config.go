package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTurnstileURL is Cloudflare's siteverify endpoint.
const DefaultTurnstileURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type Config struct {
	Addr     string
	LogLevel string

	// Storage
	DBPath           string
	DefaultTab       string
	DedupeAcrossTabs bool
	SnowflakeNode    int64

	// Bot verification
	TurnstileEnabled   bool
	TurnstileSiteKey   string
	TurnstileSecretKey string
	TurnstileURL       string

	// Notifications
	WebhookURL string

	// HTTP surface
	AllowedOrigins  []string
	HSTSEnabled     bool
	ExtendedEnabled bool
	BulkEnabled     bool
	MetricsEnabled  bool

	// Rate limiting
	RateLimitWindow  time.Duration
	RateLimitMax     int
	RateLimitBackend string // "memory" or "redis"
	RedisAddr        string
	RedisPassword    string
	RedisDB          int

	// Outbound collaborator timeouts
	VerifyTimeout time.Duration
	NotifyTimeout time.Duration
}

// Load builds the configuration from the environment. A .env file in the
// working directory is applied first if present. The returned value is
// immutable; components receive it by injection at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:     getEnv("SIGNUP_ADDR", ":8080"),
		LogLevel: getEnv("SIGNUP_LOG_LEVEL", "info"),

		DBPath:           os.Getenv("SIGNUP_DB_PATH"),
		DefaultTab:       getEnv("SIGNUP_DEFAULT_TAB", "Signups"),
		DedupeAcrossTabs: getEnvAsBool("SIGNUP_DEDUPE_ACROSS_TABS", false),
		SnowflakeNode:    int64(getEnvAsInt("SIGNUP_SNOWFLAKE_NODE", 0)),

		TurnstileEnabled:   getEnvAsBool("SIGNUP_TURNSTILE_ENABLED", false),
		TurnstileSiteKey:   os.Getenv("SIGNUP_TURNSTILE_SITE_KEY"),
		TurnstileSecretKey: os.Getenv("SIGNUP_TURNSTILE_SECRET_KEY"),
		TurnstileURL:       getEnv("SIGNUP_TURNSTILE_URL", DefaultTurnstileURL),

		WebhookURL: os.Getenv("SIGNUP_WEBHOOK_URL"),

		AllowedOrigins:  splitList(getEnv("SIGNUP_ALLOWED_ORIGINS", "*")),
		HSTSEnabled:     getEnvAsBool("SIGNUP_HSTS_ENABLED", false),
		ExtendedEnabled: getEnvAsBool("SIGNUP_EXTENDED_ENABLED", true),
		BulkEnabled:     getEnvAsBool("SIGNUP_BULK_ENABLED", true),
		MetricsEnabled:  getEnvAsBool("SIGNUP_METRICS_ENABLED", false),

		RateLimitWindow:  getEnvAsDuration("SIGNUP_RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:     getEnvAsInt("SIGNUP_RATE_LIMIT_MAX", 10),
		RateLimitBackend: getEnv("SIGNUP_RATE_LIMIT_BACKEND", "memory"),
		RedisAddr:        getEnv("SIGNUP_REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("SIGNUP_REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("SIGNUP_REDIS_DB", 0),

		VerifyTimeout: getEnvAsDuration("SIGNUP_VERIFY_TIMEOUT", 10*time.Second),
		NotifyTimeout: getEnvAsDuration("SIGNUP_NOTIFY_TIMEOUT", 10*time.Second),
	}

	if cfg.DBPath != "" {
		cfg.DBPath = filepath.Clean(cfg.DBPath)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("SIGNUP_DB_PATH must be set")
	}
	if c.TurnstileEnabled && c.TurnstileSecretKey == "" {
		return fmt.Errorf("SIGNUP_TURNSTILE_SECRET_KEY must be set when Turnstile is enabled")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("SIGNUP_RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("SIGNUP_RATE_LIMIT_WINDOW must be positive")
	}
	switch c.RateLimitBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("SIGNUP_RATE_LIMIT_BACKEND must be %q or %q", "memory", "redis")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
