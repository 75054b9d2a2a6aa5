// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Command server runs NEO Explorer, a small web front-end over NASA's Near
Earth Object Web Service (NeoWs).

Visitors pick a date and get every object that makes a close approach to
Earth that day, or open a single object to see its full approach history.
Each browser session keeps a "Top Trumps" tally of the fastest object seen,
the closest miss distance seen and the number of objects seen, carried in a
signed cookie.

# Process Layout

	RootSupervisor ("neoexplorer")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── cache-janitor (CACHE_ENABLED=true)
	│   └── uptime
	└── APISupervisor ("api-layer")
	    └── http-server

Startup order:

 1. Configuration: koanf with defaults, optional YAML file, environment
 2. Logging: zerolog, JSON or console
 3. Session store: gorilla/securecookie signing key
 4. Templates: html/template pages embedded in the binary
 5. NeoWs client: resty, wrapped by the response cache and circuit breaker
 6. HTTP server: chi router and middleware
 7. Supervisor tree: runs until SIGINT or SIGTERM

# Configuration

Priority: environment variables > config file (CONFIG_PATH or ./config.yaml) > defaults.

	HTTP_HOST=127.0.0.1          # listen address
	HTTP_PORT=8080
	HTTP_TIMEOUT=30s
	ENVIRONMENT=development      # or production

	NEOWS_BASE_URL=https://api.nasa.gov
	NEOWS_API_KEY=DEMO_KEY       # or NEOWS_API_KEY_FILE=/run/secrets/neows
	NEOWS_TIMEOUT=15s
	NEOWS_DIAMETER_UNIT=kilometers   # meters, miles, feet
	NEOWS_REQUESTS_PER_HOUR=0        # outbound throttle, 0 disables
	NEOWS_MAX_RANGE_DAYS=7

	SESSION_COOKIE_NAME=neo_tally
	SESSION_HASH_KEY=<32+ chars>     # required in production
	SESSION_COOKIE_SECURE=false

	TRACKER_COUNT_LOOKUPS=true
	TRACKER_CLOSEST_MODE=distance    # or velocity-gate

	CACHE_ENABLED=true
	CACHE_TTL=10m
	CACHE_CLEANUP_INTERVAL=5m

	RATE_LIMIT_REQUESTS=60
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false
	CORS_ORIGINS=

	LOG_LEVEL=info
	LOG_FORMAT=json
	LOG_CALLER=false

# Example

	export NEOWS_API_KEY=your-key
	export SESSION_HASH_KEY=$(openssl rand -hex 32)
	./neoexplorer

Then open http://127.0.0.1:8080/.
*/
package main
