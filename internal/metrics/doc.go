// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

NeoWs upstream:
  - neows_requests_total{endpoint,outcome}
  - neows_request_duration_seconds{endpoint}
  - neows_throttle_wait_seconds

Cache and circuit breaker:
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total{cache_type}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Domain:
  - neo_objects_rendered_total{view}
  - neo_hazardous_objects_rendered_total
  - neo_tally_updates_total{kind}

The endpoint label is the chi route pattern (for example /neo/{id}), never the
raw request path, so label cardinality stays bounded.
*/
package metrics
