// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package config provides centralized configuration management for NEO Explorer.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, ./config.yaml or /etc/neoexplorer/config.yaml
 3. Environment variables, mapped explicitly through envMappings

Unknown environment variables are ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 127.0.0.1)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

NeoWs Upstream:
  - NEOWS_BASE_URL: API host (default: https://api.nasa.gov)
  - NEOWS_API_KEY: API key (default: DEMO_KEY)
  - NEOWS_API_KEY_FILE: File holding the API key (Docker secrets)
  - NEOWS_TIMEOUT: Per-request timeout (default: 15s)
  - NEOWS_DIAMETER_UNIT: kilometers, meters, miles, feet (default: kilometers)
  - NEOWS_REQUESTS_PER_HOUR: Outbound budget, 0 = unlimited (default: 0)
  - NEOWS_MAX_RANGE_DAYS: Longest accepted feed range, 0 = single day only (default: 7)

Session:
  - SESSION_COOKIE_NAME: Tally cookie name (default: neo_tally)
  - SESSION_HASH_KEY: Cookie signing key, min 32 chars (required in production)
  - SESSION_COOKIE_SECURE: Set the Secure attribute (default: false)

Tracker:
  - TRACKER_COUNT_LOOKUPS: Count lookups towards the seen total (default: true)
  - TRACKER_CLOSEST_MODE: distance or velocity-gate (default: distance)

Cache:
  - CACHE_ENABLED: Cache upstream responses (default: true)
  - CACHE_TTL: Entry lifetime (default: 10m)
  - CACHE_CLEANUP_INTERVAL: Expired-entry sweep interval (default: 5m)

Security:
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 60)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - CORS_ORIGINS: Comma-separated origins for /api/v1 (default: none)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	fmt.Printf("Server listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
*/
package config
