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
	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// SessionStore persists the tally between requests.
//
// Satisfied by *session.Store.
type SessionStore interface {
	Load(r *http.Request) (tracker.State, bool)
	Save(w http.ResponseWriter, state tracker.State) error
}

// Renderer produces HTML pages.
//
// Satisfied by *render.Engine.
type Renderer interface {
	Execute(name string, data interface{}) ([]byte, error)
	Render(w http.ResponseWriter, status int, name string, data interface{}) error
}

// BreakerStatus reports the upstream circuit breaker state for /health.
//
// Satisfied by *nasa.CircuitBreakerClient.
type BreakerStatus interface {
	Name() string
	State() string
}

// CacheStatus reports the NeoWs response cache counters for /health.
//
// Satisfied by *nasa.CachingClient.
type CacheStatus interface {
	Stats() (feeds, lookups cache.Stats)
}

// HandlerConfig holds the dependencies of Handler.
type HandlerConfig struct {
	Client   nasa.Client
	Sessions SessionStore
	Renderer Renderer

	// Breaker is optional; without it /health reports no breaker.
	Breaker BreakerStatus

	// Cache is optional; set it when the client is cache-wrapped.
	Cache CacheStatus

	// DiameterUnit is the NeoWs estimated_diameter key shown on pages.
	DiameterUnit string

	// MaxRangeDays bounds end - start on feed pages. 0 allows single days only.
	MaxRangeDays int

	Policy  tracker.Policy
	Version string
}

// Handler serves the pages and JSON endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_pages.go: HTML pages (index, feed, lookup, reset)
//   - handlers_health.go: health and tally JSON endpoints
//   - handlers_errors.go: error classification and error pages
type Handler struct {
	client       nasa.Client
	sessions     SessionStore
	renderer     Renderer
	breaker      BreakerStatus
	cache        CacheStatus
	unit         string
	maxRangeDays int
	policy       tracker.Policy
	version      string
	startTime    time.Time
}

// NewHandler creates a handler from cfg.
func NewHandler(cfg HandlerConfig) *Handler {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	return &Handler{
		client:       cfg.Client,
		sessions:     cfg.Sessions,
		renderer:     cfg.Renderer,
		breaker:      cfg.Breaker,
		cache:        cfg.Cache,
		unit:         cfg.DiameterUnit,
		maxRangeDays: cfg.MaxRangeDays,
		policy:       cfg.Policy,
		version:      version,
		startTime:    time.Now(),
	}
}
