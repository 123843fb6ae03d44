package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every env var this package reads, for test isolation.
var configEnvVars = []string{
	"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET", "AMADEUS_BASE_URL", "HTTP_CLIENT_TIMEOUT",
	"SEARCH_WINDOW_DAYS", "SEARCH_TOP_CANDIDATES", "SEARCH_MIN_STAY_DAYS", "SEARCH_MAX_STAY_DAYS",
	"SEARCH_MAX_CONNECTIONS", "SEARCH_CURRENCY", "SEARCH_MAX_OFFERS",
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT", "APP_ENV",
}

// clearEnvVars removes all config-related env vars for the duration of a test.
// t.Setenv registers the restore hook; the follow-up Unsetenv makes the
// variable truly absent rather than present-but-empty.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Amadeus defaults
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL, "default base URL")
	assert.Equal(t, "10s", cfg.Amadeus.HTTPTimeout.String(), "default http timeout")

	// Search defaults
	assert.Equal(t, 180, cfg.Search.WindowDays, "default window")
	assert.Equal(t, 5, cfg.Search.TopCandidates, "default top candidates")
	assert.Equal(t, 7, cfg.Search.MinStayDays, "default min stay")
	assert.Equal(t, 14, cfg.Search.MaxStayDays, "default max stay")
	assert.Equal(t, 2, cfg.Search.MaxConnections, "default max connections")
	assert.Equal(t, "EUR", cfg.Search.Currency, "default currency")
	assert.Equal(t, 5, cfg.Search.MaxOffers, "default max offers")

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("AMADEUS_CLIENT_ID", "client-id")
	t.Setenv("AMADEUS_CLIENT_SECRET", "client-secret")
	t.Setenv("SEARCH_WINDOW_DAYS", "90")
	t.Setenv("SEARCH_MAX_CONNECTIONS", "0")
	t.Setenv("SEARCH_CURRENCY", "USD")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "client-id", cfg.Amadeus.ClientID)
	assert.Equal(t, "client-secret", cfg.Amadeus.ClientSecret)
	assert.Equal(t, 90, cfg.Search.WindowDays)
	assert.Equal(t, 0, cfg.Search.MaxConnections, "direct-only is a valid override")
	assert.Equal(t, "USD", cfg.Search.Currency)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
}

// TestLoad_ValidationFailures tests that invalid values are rejected.
func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "window too large", key: "SEARCH_WINDOW_DAYS", value: "400"},
		{name: "zero top candidates", key: "SEARCH_TOP_CANDIDATES", value: "0"},
		{name: "inverted stay bounds", key: "SEARCH_MAX_STAY_DAYS", value: "3"},
		{name: "negative max connections", key: "SEARCH_MAX_CONNECTIONS", value: "-1"},
		{name: "max offers above cap", key: "SEARCH_MAX_OFFERS", value: "9"},
		{name: "invalid port", key: "SERVER_PORT", value: "70000"},
		{name: "invalid log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "invalid log format", key: "LOG_FORMAT", value: "xml"},
		{name: "invalid app env", key: "APP_ENV", value: "qa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// TestCriteria tests that configured defaults flow into search criteria.
func TestCriteria(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SEARCH_MAX_CONNECTIONS", "1")

	cfg, err := Load()
	require.NoError(t, err)

	criteria := cfg.Criteria("BER", "TPE")

	assert.Equal(t, "BER", criteria.Origin)
	assert.Equal(t, "TPE", criteria.Destination)
	assert.Equal(t, 1, criteria.MaxConnections)
	assert.Equal(t, cfg.Search.WindowDays, criteria.WindowDays)
	assert.NoError(t, criteria.Validate())
}
