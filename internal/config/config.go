// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	NeoWs    NeoWsConfig    `koanf:"neows"`
	Session  SessionConfig  `koanf:"session"`
	Tracker  TrackerConfig  `koanf:"tracker"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// NeoWsConfig holds the upstream NASA NeoWs API settings.
//
// Environment Variables:
//   - NEOWS_BASE_URL: API host (default: https://api.nasa.gov)
//   - NEOWS_API_KEY: api.nasa.gov key (default: DEMO_KEY)
//   - NEOWS_API_KEY_FILE: read the key from this file instead
//   - NEOWS_DIAMETER_UNIT: kilometers, meters, miles or feet (default: kilometers)
//   - NEOWS_REQUESTS_PER_HOUR: outbound request budget, 0 disables (default: 0)
type NeoWsConfig struct {
	BaseURL         string        `koanf:"base_url"`
	APIKey          string        `koanf:"api_key"`
	APIKeyFile      string        `koanf:"api_key_file"`
	Timeout         time.Duration `koanf:"timeout"`
	DiameterUnit    string        `koanf:"diameter_unit"`
	RequestsPerHour int           `koanf:"requests_per_hour"`

	// MaxRangeDays bounds end_date - start_date for feed queries. NeoWs
	// rejects ranges longer than seven days.
	MaxRangeDays int `koanf:"max_range_days"`
}

// SessionConfig holds the signed tally cookie settings.
type SessionConfig struct {
	CookieName string `koanf:"cookie_name"`

	// HashKey signs the cookie. When empty outside production a random key
	// is generated at startup and tallies do not survive a restart.
	HashKey string `koanf:"hash_key"`

	CookieSecure bool `koanf:"cookie_secure"`
}

// TrackerConfig selects the lookup tally policy.
type TrackerConfig struct {
	// CountLookups adds one to the seen counter for every lookup page.
	CountLookups bool `koanf:"count_lookups"`

	// ClosestMode is "distance" or "velocity-gate".
	ClosestMode string `koanf:"closest_mode"`
}

// CacheConfig holds the upstream response cache settings.
type CacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
