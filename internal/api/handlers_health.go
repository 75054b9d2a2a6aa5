// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/neoexplorer/internal/cache"
	"github.com/tomtom215/neoexplorer/internal/nasa"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status  string  `json:"status"` // "healthy" or "degraded"
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`

	// Breaker is omitted when the client is not breaker-protected.
	Breaker *BreakerHealth `json:"circuit_breaker,omitempty"`

	// Cache is keyed by endpoint and omitted when caching is off.
	Cache map[string]CacheHealth `json:"cache,omitempty"`
}

// CacheHealth summarizes one response cache.
type CacheHealth struct {
	Keys    int64   `json:"keys"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate_percent"`
}

func cacheHealth(s cache.Stats) CacheHealth {
	return CacheHealth{
		Keys:    s.TotalKeys,
		Hits:    s.Hits,
		Misses:  s.Misses,
		HitRate: s.HitRate(),
	}
}

// BreakerHealth describes the NeoWs circuit breaker.
type BreakerHealth struct {
	Name  string `json:"name"`
	State string `json:"state"` // "closed", "half-open" or "open"
}

// TallyResponse is the body of GET /api/v1/stats.
type TallyResponse struct {
	// FastestKmh is 0 until a velocity has been observed.
	FastestKmh float64 `json:"fastest_kmh"`

	// ClosestKm is null until a miss distance has been observed.
	ClosestKm *float64 `json:"closest_km"`

	TotalSeen int64 `json:"total_seen"`
}

// Health reports process health. An open circuit breaker degrades the
// service and answers 503 so load balancers can react.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	status := http.StatusOK
	if h.breaker != nil {
		health.Breaker = &BreakerHealth{
			Name:  h.breaker.Name(),
			State: h.breaker.State(),
		}
		if health.Breaker.State == "open" {
			health.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	if h.cache != nil {
		feeds, lookups := h.cache.Stats()
		health.Cache = map[string]CacheHealth{
			nasa.EndpointFeed:   cacheHealth(feeds),
			nasa.EndpointLookup: cacheHealth(lookups),
		}
	}

	NewResponseWriter(w, r).SuccessWithStatus(status, health)
}

// Stats returns the session tally as JSON. It never writes the cookie.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	state, _ := h.sessions.Load(r)

	resp := TallyResponse{
		FastestKmh: state.Fastest,
		TotalSeen:  state.TotalSeen,
	}
	if state.HasClosest() {
		closest := state.Closest
		resp.ClosestKm = &closest
	}

	NewResponseWriter(w, r).Success(resp)
}
