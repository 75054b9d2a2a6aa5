// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package nasa

import (
	"context"
	"time"

	"github.com/tomtom215/neoexplorer/internal/cache"
	"github.com/tomtom215/neoexplorer/internal/models/neows"
)

// Ensure CachingClient implements Client
var _ Client = (*CachingClient)(nil)

// CachingClient serves repeated Feed and Lookup calls from a TTL cache.
// Only successful responses are cached. Cached values are shared between
// requests and must be treated as read-only.
//
// A response that decodes but is later rejected by projection (a record with
// no close approaches, say) is still a successful response. It stays cached
// and keeps failing the same way until its entry expires.
type CachingClient struct {
	client  Client
	feeds   *cache.Cache[*neows.Feed]
	lookups *cache.Cache[*neows.NeoRecord]
}

// NewCachingClient wraps client with caches whose entries live for ttl.
func NewCachingClient(client Client, ttl time.Duration) *CachingClient {
	return &CachingClient{
		client:  client,
		feeds:   cache.New[*neows.Feed](EndpointFeed, ttl),
		lookups: cache.New[*neows.NeoRecord](EndpointLookup, ttl),
	}
}

// Feed implements Client.
func (c *CachingClient) Feed(ctx context.Context, start, end string) (*neows.Feed, error) {
	key := start + ":" + end
	if feed, ok := c.feeds.Get(key); ok {
		return feed, nil
	}

	feed, err := c.client.Feed(ctx, start, end)
	if err != nil {
		return nil, err
	}
	c.feeds.Set(key, feed)
	return feed, nil
}

// Lookup implements Client.
func (c *CachingClient) Lookup(ctx context.Context, id string) (*neows.NeoRecord, error) {
	if rec, ok := c.lookups.Get(id); ok {
		return rec, nil
	}

	rec, err := c.client.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	c.lookups.Set(id, rec)
	return rec, nil
}

// Sweep drops expired entries from both caches and returns the count.
func (c *CachingClient) Sweep() int {
	return c.feeds.Sweep() + c.lookups.Sweep()
}

// Stats returns the feed and lookup cache counters.
func (c *CachingClient) Stats() (feeds, lookups cache.Stats) {
	return c.feeds.GetStats(), c.lookups.GetStats()
}
