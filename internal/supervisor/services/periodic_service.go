// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package services

import (
	"context"
	"time"

	"github.com/tomtom215/neoexplorer/internal/logging"
	"github.com/tomtom215/neoexplorer/internal/metrics"
)

// PeriodicService calls a function on a fixed interval until its context
// ends. A panic in the function is recovered by the supervisor, which
// restarts the service.
type PeriodicService struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
}

// NewPeriodicService creates a service that runs tick every interval.
// A non-positive interval means one minute.
func NewPeriodicService(name string, interval time.Duration, tick func(ctx context.Context)) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{name: name, interval: interval, tick: tick}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *PeriodicService) String() string {
	return p.name
}

// Sweeper drops expired cache entries and reports how many it removed.
//
// Satisfied by *nasa.CachingClient.
type Sweeper interface {
	Sweep() int
}

// NewCacheJanitor sweeps expired NeoWs responses every interval.
func NewCacheJanitor(sweeper Sweeper, interval time.Duration) *PeriodicService {
	return NewPeriodicService("cache-janitor", interval, func(context.Context) {
		if n := sweeper.Sweep(); n > 0 {
			logging.Debug().Int("removed", n).Msg("Swept expired NeoWs responses")
		}
	})
}

// NewUptimeReporter keeps the uptime gauge current.
func NewUptimeReporter(started time.Time, interval time.Duration) *PeriodicService {
	return NewPeriodicService("uptime", interval, func(context.Context) {
		metrics.AppUptime.Set(time.Since(started).Seconds())
	})
}
