// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Amadeus AmadeusConfig
	Search  SearchConfig
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
}

// AmadeusConfig holds credentials and endpoints for the Amadeus API.
// This is the canonical credential schema; earlier iterations of this tool
// drifted between AMADEUS_CLIENT_ID, api-key and amadeus-api-key.
type AmadeusConfig struct {
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	HTTPTimeout  time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds default search parameters. Origin and destination are
// supplied per run (CLI flags or request body), everything else defaults here.
type SearchConfig struct {
	WindowDays     int    `env:"SEARCH_WINDOW_DAYS" envDefault:"180"`
	TopCandidates  int    `env:"SEARCH_TOP_CANDIDATES" envDefault:"5"`
	MinStayDays    int    `env:"SEARCH_MIN_STAY_DAYS" envDefault:"7"`
	MaxStayDays    int    `env:"SEARCH_MAX_STAY_DAYS" envDefault:"14"`
	MaxConnections int    `env:"SEARCH_MAX_CONNECTIONS" envDefault:"2"`
	Currency       string `env:"SEARCH_CURRENCY" envDefault:"EUR"`
	MaxOffers      int    `env:"SEARCH_MAX_OFFERS" envDefault:"5"`
}

// ServerConfig holds HTTP server settings for the API mode.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Ignore error if the .env file doesn't exist.
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

// validate checks configuration values for correctness. Credentials are not
// validated here: their absence only matters when a search is attempted, and
// the token exchange reports it as a fatal auth failure.
func validate(cfg *Config) error {
	if cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
	}
	if cfg.Amadeus.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must be positive")
	}

	if cfg.Search.WindowDays < 1 || cfg.Search.WindowDays > 365 {
		return fmt.Errorf("SEARCH_WINDOW_DAYS must be between 1 and 365, got %d", cfg.Search.WindowDays)
	}
	if cfg.Search.TopCandidates < 1 {
		return fmt.Errorf("SEARCH_TOP_CANDIDATES must be at least 1")
	}
	if cfg.Search.MinStayDays < 1 {
		return fmt.Errorf("SEARCH_MIN_STAY_DAYS must be at least 1")
	}
	if cfg.Search.MaxStayDays < cfg.Search.MinStayDays {
		return fmt.Errorf("SEARCH_MAX_STAY_DAYS (%d) must not be less than SEARCH_MIN_STAY_DAYS (%d)",
			cfg.Search.MaxStayDays, cfg.Search.MinStayDays)
	}
	if cfg.Search.MaxConnections < 0 {
		return fmt.Errorf("SEARCH_MAX_CONNECTIONS must not be negative")
	}
	if cfg.Search.MaxOffers < 1 || cfg.Search.MaxOffers > domain.MaxOfferRequest {
		return fmt.Errorf("SEARCH_MAX_OFFERS must be between 1 and %d, got %d",
			domain.MaxOfferRequest, cfg.Search.MaxOffers)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// Criteria builds search criteria from the configured defaults for the given
// route. Callers may override individual fields before validating.
func (c *Config) Criteria(origin, destination string) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:         origin,
		Destination:    destination,
		WindowDays:     c.Search.WindowDays,
		TopCandidates:  c.Search.TopCandidates,
		MinStayDays:    c.Search.MinStayDays,
		MaxStayDays:    c.Search.MaxStayDays,
		MaxConnections: c.Search.MaxConnections,
		Currency:       c.Search.Currency,
		MaxOffers:      c.Search.MaxOffers,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
