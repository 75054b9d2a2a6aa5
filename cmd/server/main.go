// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/neoexplorer/internal/api"
	"github.com/tomtom215/neoexplorer/internal/config"
	"github.com/tomtom215/neoexplorer/internal/logging"
	"github.com/tomtom215/neoexplorer/internal/metrics"
	"github.com/tomtom215/neoexplorer/internal/nasa"
	"github.com/tomtom215/neoexplorer/internal/render"
	"github.com/tomtom215/neoexplorer/internal/session"
	"github.com/tomtom215/neoexplorer/internal/supervisor"
	"github.com/tomtom215/neoexplorer/internal/supervisor/services"
	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("neows_url", cfg.NeoWs.BaseURL).
		Str("diameter_unit", cfg.NeoWs.DiameterUnit).
		Msg("Starting NEO Explorer")

	if cfg.NeoWs.APIKey == "DEMO_KEY" {
		logging.Warn().Msg("Using NeoWs DEMO_KEY; requests are limited to 30 per hour per IP. Set NEOWS_API_KEY for real use.")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); restrict it in production")
	}

	sessions, err := session.NewStore(session.Config{
		CookieName: cfg.Session.CookieName,
		HashKey:    []byte(cfg.Session.HashKey),
		Secure:     cfg.Session.CookieSecure,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create session store")
	}
	if sessions.Ephemeral() {
		logging.Warn().Msg("SESSION_HASH_KEY not set; using a random key, tallies reset on restart")
	}

	policy, err := trackerPolicy(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid tracker configuration")
	}

	engine, err := render.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// RestyClient -> CachingClient (optional) -> CircuitBreakerClient.
	// The breaker sits outermost so cache hits never count against it.
	var client nasa.Client = nasa.NewRestyClient(nasa.Config{
		BaseURL:         cfg.NeoWs.BaseURL,
		APIKey:          cfg.NeoWs.APIKey,
		Timeout:         cfg.NeoWs.Timeout,
		RequestsPerHour: cfg.NeoWs.RequestsPerHour,
	})
	var cacheStatus api.CacheStatus
	if cfg.Cache.Enabled {
		cached := nasa.NewCachingClient(client, cfg.Cache.TTL)
		tree.AddMaintenanceService(services.NewCacheJanitor(cached, cfg.Cache.CleanupInterval))
		client, cacheStatus = cached, cached
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("NeoWs response cache enabled")
	}
	breaker := nasa.NewCircuitBreakerClient(client)

	handler := api.NewHandler(api.HandlerConfig{
		Client:       breaker,
		Sessions:     sessions,
		Renderer:     engine,
		Breaker:      breaker,
		Cache:        cacheStatus,
		DiameterUnit: cfg.NeoWs.DiameterUnit,
		MaxRangeDays: cfg.NeoWs.MaxRangeDays,
		Policy:       policy,
		Version:      version,
	})

	chiConfig := api.DefaultChiMiddlewareConfig()
	chiConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	chiConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	chiConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	router := api.NewRouter(handler, chiConfig)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddMaintenanceService(services.NewUptimeReporter(startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("NEO Explorer stopped")
}

// trackerPolicy builds the lookup tally policy from configuration.
func trackerPolicy(cfg *config.Config) (tracker.Policy, error) {
	mode, err := tracker.ParseClosestMode(cfg.Tracker.ClosestMode)
	if err != nil {
		return tracker.Policy{}, err
	}
	return tracker.Policy{
		CountLookups: cfg.Tracker.CountLookups,
		Closest:      mode,
	}, nil
}
