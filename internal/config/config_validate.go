// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateNeoWs(); err != nil {
		return err
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	if err := c.validateTracker(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

// validDiameterUnits mirrors the unit keys NeoWs publishes under estimated_diameter.
var validDiameterUnits = map[string]bool{
	"kilometers": true,
	"meters":     true,
	"miles":      true,
	"feet":       true,
}

// NeoWs refuses feed ranges longer than this.
const maxFeedRangeDays = 7

// validateNeoWs validates the upstream API settings
func (c *Config) validateNeoWs() error {
	if err := validateHTTPURL(c.NeoWs.BaseURL, "NEOWS_BASE_URL"); err != nil {
		return fmt.Errorf("NEOWS_BASE_URL is invalid: %w", err)
	}
	if c.NeoWs.APIKey == "" {
		return fmt.Errorf("NEOWS_API_KEY is required (use DEMO_KEY for light testing)")
	}
	if c.NeoWs.Timeout <= 0 {
		return fmt.Errorf("NEOWS_TIMEOUT must be positive")
	}
	if !validDiameterUnits[c.NeoWs.DiameterUnit] {
		return fmt.Errorf("NEOWS_DIAMETER_UNIT must be one of: kilometers, meters, miles, feet")
	}
	if c.NeoWs.RequestsPerHour < 0 {
		return fmt.Errorf("NEOWS_REQUESTS_PER_HOUR must not be negative")
	}
	if c.NeoWs.MaxRangeDays < 0 || c.NeoWs.MaxRangeDays > maxFeedRangeDays {
		return fmt.Errorf("NEOWS_MAX_RANGE_DAYS must be between 0 and %d", maxFeedRangeDays)
	}
	return nil
}

// minHashKeyLength matches the HMAC-SHA256 block gorilla/securecookie recommends.
const minHashKeyLength = 32

// validateSession validates the tally cookie settings. A missing hash key is
// tolerated in development only.
func (c *Config) validateSession() error {
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if c.Session.HashKey == "" {
		if c.IsProduction() {
			return fmt.Errorf("SESSION_HASH_KEY is required in production")
		}
		return nil
	}
	if len(c.Session.HashKey) < minHashKeyLength {
		return fmt.Errorf("SESSION_HASH_KEY must be at least %d characters", minHashKeyLength)
	}
	return nil
}

var validClosestModes = map[string]bool{
	"distance":      true,
	"velocity-gate": true,
}

func (c *Config) validateTracker() error {
	if !validClosestModes[c.Tracker.ClosestMode] {
		return fmt.Errorf("TRACKER_CLOSEST_MODE must be one of: distance, velocity-gate")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED=true")
	}
	if c.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive when CACHE_ENABLED=true")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	return c.validateRateLimits()
}

// ShouldWarnAboutCORS returns true if CORS allows any origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
