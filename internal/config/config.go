// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SMTP holds outgoing mail settings for the contact form.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Config is the resolved runtime configuration.
type Config struct {
	Env           string // "dev" or "prod"
	LogLevel      string
	Addr          string // Web mode listen address
	DBPath        string // Visitor database; empty disables tracking
	ContentPath   string // JSON file overriding the built-in content
	Banner        string // Text the header types out
	TypeInterval  time.Duration
	BlinkInterval time.Duration
	HistoryLimit  int
	SMTP          SMTP
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env:           "prod",
		LogLevel:      "info",
		Addr:          ":8080",
		Banner:        "whoami",
		TypeInterval:  120 * time.Millisecond,
		BlinkInterval: 530 * time.Millisecond,
		HistoryLimit:  500,
		SMTP: SMTP{
			Host: "smtp.gmail.com",
			Port: "587",
		},
	}
}

// Load reads envFiles (a missing file is not an error, ".env" when none
// are given) and then the process environment on top of Default.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.Env = envOr("TERMFOLIO_ENV", cfg.Env)
	if cfg.Env == "dev" || cfg.Env == "development" {
		cfg.Env = "dev"
		cfg.LogLevel = "debug"
	}
	cfg.LogLevel = strings.ToLower(envOr("LOG_LEVEL", cfg.LogLevel))
	cfg.Addr = envOr("TERMFOLIO_ADDR", cfg.Addr)
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TERMFOLIO_ADDR") == "" {
		cfg.Addr = ":" + port
	}
	cfg.DBPath = envOr("TERMFOLIO_DB", cfg.DBPath)
	cfg.ContentPath = envOr("TERMFOLIO_CONTENT", cfg.ContentPath)
	cfg.Banner = envOr("TERMFOLIO_BANNER", cfg.Banner)

	var err error
	if cfg.TypeInterval, err = envDuration("TERMFOLIO_TYPE_INTERVAL", cfg.TypeInterval); err != nil {
		return Config{}, err
	}
	if cfg.BlinkInterval, err = envDuration("TERMFOLIO_BLINK_INTERVAL", cfg.BlinkInterval); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("TERMFOLIO_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TERMFOLIO_HISTORY_LIMIT: %w", err)
		}
		cfg.HistoryLimit = n
	}

	cfg.SMTP.Host = envOr("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = envOr("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.User = os.Getenv("SMTP_USER")
	cfg.SMTP.Pass = os.Getenv("SMTP_PASS")
	cfg.SMTP.To = os.Getenv("TO_EMAIL")

	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.TypeInterval <= 0 {
		return fmt.Errorf("type interval must be positive, got %s", c.TypeInterval)
	}
	if c.BlinkInterval <= 0 {
		return fmt.Errorf("blink interval must be positive, got %s", c.BlinkInterval)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
