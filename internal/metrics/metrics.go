// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// NeoWs Upstream Metrics
	NeoWsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neows_requests_total",
			Help: "Total number of requests sent to the NeoWs API",
		},
		[]string{"endpoint", "outcome"}, // endpoint: "feed", "lookup"; outcome: "ok", "http_error", "malformed", "transport"
	)

	NeoWsRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neows_request_duration_seconds",
			Help:    "NeoWs API round-trip duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"endpoint"},
	)

	NeoWsThrottleWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neows_throttle_wait_seconds",
			Help:    "Time spent waiting on the outbound NeoWs rate limiter",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "feed", "lookup"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Near-Earth Object Metrics
	NEOsProjected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_objects_rendered_total",
			Help: "Total number of near-earth objects rendered to users",
		},
		[]string{"view"}, // "feed", "lookup"
	)

	HazardousNEOsProjected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "neo_hazardous_objects_rendered_total",
			Help: "Total number of potentially hazardous objects rendered to users",
		},
	)

	TallyUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_tally_updates_total",
			Help: "Total number of session tally updates",
		},
		[]string{"kind"}, // "feed", "lookup", "reset"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordNeoWsRequest records one upstream round trip.
func RecordNeoWsRequest(endpoint, outcome string, duration time.Duration) {
	NeoWsRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	NeoWsRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordProjection records objects rendered by a feed or lookup page.
func RecordProjection(view string, count, hazardous int) {
	NEOsProjected.WithLabelValues(view).Add(float64(count))
	HazardousNEOsProjected.Add(float64(hazardous))
}

// RecordTallyUpdate records a session tally change.
func RecordTallyUpdate(kind string) {
	TallyUpdates.WithLabelValues(kind).Inc()
}
