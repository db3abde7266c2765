// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/flight-search/journey-search-api/internal/infrastructure/logger"
)

// Supported flight sources.
const (
	SourceHTTP = "http"
	SourceFile = "file"
)

// maxFlightsLimit caps PROVIDER_MAX_FLIGHTS.
const maxFlightsLimit = 10

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Logging  logger.Config
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ProviderConfig holds settings for the upstream flights feed.
type ProviderConfig struct {
	// Source selects where flights come from: http or file
	Source string `env:"PROVIDER_SOURCE" envDefault:"http"`

	// BaseURL is the upstream flights endpoint (source=http)
	BaseURL string `env:"PROVIDER_BASE_URL" envDefault:"https://recruiting-api.newshore.es/api/flights/2"`

	// DataFile is a local flights document (source=file)
	DataFile string `env:"PROVIDER_DATA_FILE" envDefault:"docs/flights-mock/flights.json"`

	// Timeout bounds a single upstream request
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"5s"`

	// MaxFlights is the maximum number of legs per journey
	MaxFlights int `env:"PROVIDER_MAX_FLIGHTS" envDefault:"4"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if err := cfg.Server.validate(); err != nil {
		return err
	}
	if err := cfg.Provider.validate(); err != nil {
		return err
	}
	if err := oneOf("LOG_LEVEL", cfg.Logging.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("LOG_FORMAT", cfg.Logging.Format, logger.FormatJSON, logger.FormatConsole); err != nil {
		return err
	}
	return oneOf("APP_ENV", cfg.App.Env, "development", "staging", "production")
}

func (s ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", s.Port)
	}
	return positive(map[string]time.Duration{
		"SERVER_READ_TIMEOUT":     s.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    s.WriteTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": s.ShutdownTimeout,
	})
}

func (p ProviderConfig) validate() error {
	if err := oneOf("PROVIDER_SOURCE", p.Source, SourceHTTP, SourceFile); err != nil {
		return err
	}
	if p.Source == SourceHTTP && p.BaseURL == "" {
		return errors.New("PROVIDER_BASE_URL is required when PROVIDER_SOURCE=http")
	}
	if p.Source == SourceFile && p.DataFile == "" {
		return errors.New("PROVIDER_DATA_FILE is required when PROVIDER_SOURCE=file")
	}
	if err := positive(map[string]time.Duration{"PROVIDER_TIMEOUT": p.Timeout}); err != nil {
		return err
	}
	if p.MaxFlights < 1 || p.MaxFlights > maxFlightsLimit {
		return fmt.Errorf("PROVIDER_MAX_FLIGHTS must be between 1 and %d, got %d", maxFlightsLimit, p.MaxFlights)
	}
	return nil
}

// oneOf fails unless value is one of allowed.
func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

// positive fails on the first non-positive duration, in name order.
func positive(durations map[string]time.Duration) error {
	names := make([]string, 0, len(durations))
	for name := range durations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if durations[name] <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
