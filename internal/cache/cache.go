// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

// Package cache provides a thread-safe in-memory TTL cache for upstream
// NeoWs responses.
//
// Expired entries are dropped lazily on Get and in bulk by Sweep. Sweep is
// driven by the supervisor's cache janitor service rather than a goroutine
// owned by the cache, so shutdown stops it with everything else.
package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/neoexplorer/internal/metrics"
)

// Entry represents a cached item with expiration
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Stats is a snapshot of cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// Cache is a TTL cache keyed by string. The name labels its Prometheus series.
type Cache[V any] struct {
	mu      sync.RWMutex
	name    string
	entries map[string]Entry[V]
	ttl     time.Duration
	stats   Stats
	now     func() time.Time
}

// New creates a cache whose entries live for ttl.
//
//	feeds := cache.New[*neows.Feed]("feed", 10*time.Minute)
//	feeds.Set("2015-09-07:2015-09-08", feed)
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name:    name,
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
		now:     time.Now,
	}
}

// Name returns the cache label.
func (c *Cache[V]) Name() string {
	return c.name
}

// Get returns the value for key if present and unexpired. An expired entry is
// removed and counted as both a miss and an eviction.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return zero, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Recheck: a concurrent Set may have refreshed the key.
		if current, ok := c.entries[key]; ok && c.now().After(current.ExpiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
			metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		}
		c.updateSizeLocked()
		c.mu.Unlock()
		c.recordMiss()
		return zero, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Data:      value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.updateSizeLocked()
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *Cache[V]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}

	c.stats.Evictions += int64(evicted)
	c.stats.LastCleanup = now
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
	c.updateSizeLocked()
	return evicted
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// updateSizeLocked must be called with mu held for writing.
func (c *Cache[V]) updateSizeLocked() {
	c.stats.TotalKeys = int64(len(c.entries))
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

func (c *Cache[V]) recordHit() {
	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()
	metrics.CacheHits.WithLabelValues(c.name).Inc()
}

func (c *Cache[V]) recordMiss() {
	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()
	metrics.CacheMisses.WithLabelValues(c.name).Inc()
}
