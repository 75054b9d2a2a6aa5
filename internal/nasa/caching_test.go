// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package nasa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/neoexplorer/internal/models/neows"
)

func TestCachingClient_Feed(t *testing.T) {
	t.Parallel()

	stub := &stubClient{feed: &neows.Feed{ElementCount: 2}}
	c := NewCachingClient(stub, time.Minute)

	for i := 0; i < 3; i++ {
		feed, err := c.Feed(context.Background(), "2015-09-07", "2015-09-08")
		if err != nil || feed.ElementCount != 2 {
			t.Fatalf("Feed() = %v, %v", feed, err)
		}
	}
	if got := stub.calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}

	// A different range is a different key.
	if _, err := c.Feed(context.Background(), "2015-09-08", "2015-09-08"); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if got := stub.calls.Load(); got != 2 {
		t.Errorf("upstream calls = %d, want 2", got)
	}

	feeds, _ := c.Stats()
	if feeds.Hits != 2 || feeds.Misses != 2 {
		t.Errorf("feed cache hits/misses = %d/%d, want 2/2", feeds.Hits, feeds.Misses)
	}
}

func TestCachingClient_ApproachlessFeedIsCached(t *testing.T) {
	t.Parallel()

	feed := &neows.Feed{
		ElementCount: 1,
		Days: []neows.FeedDay{{
			Date:    "2015-09-07",
			Objects: []neows.NeoRecord{{ID: "1"}},
		}},
	}
	stub := &stubClient{feed: feed}
	c := NewCachingClient(stub, time.Minute)

	for i := 0; i < 2; i++ {
		got, err := c.Feed(context.Background(), "2015-09-07", "2015-09-07")
		if err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
		if got != feed {
			t.Fatalf("Feed() returned %p, want cached %p", got, feed)
		}
	}
	if got := stub.calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}

func TestCachingClient_LookupErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	upstreamErr := &UpstreamError{Endpoint: EndpointLookup, StatusCode: 503}
	stub := &stubClient{err: upstreamErr}
	c := NewCachingClient(stub, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := c.Lookup(context.Background(), "2465633"); !errors.Is(err, upstreamErr) {
			t.Fatalf("Lookup() error = %v, want upstream error", err)
		}
	}
	if got := stub.calls.Load(); got != 2 {
		t.Errorf("upstream calls = %d, want 2 (errors are not cached)", got)
	}

	stub.err = nil
	stub.rec = &neows.NeoRecord{ID: "2465633"}
	if _, err := c.Lookup(context.Background(), "2465633"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if _, err := c.Lookup(context.Background(), "2465633"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got := stub.calls.Load(); got != 3 {
		t.Errorf("upstream calls = %d, want 3", got)
	}
}

func TestCachingClient_Sweep(t *testing.T) {
	t.Parallel()

	stub := &stubClient{feed: &neows.Feed{}, rec: &neows.NeoRecord{}}
	c := NewCachingClient(stub, time.Nanosecond)

	_, _ = c.Feed(context.Background(), "2015-09-07", "2015-09-07")
	_, _ = c.Lookup(context.Background(), "1")
	time.Sleep(time.Millisecond)

	if got := c.Sweep(); got != 2 {
		t.Errorf("Sweep() = %d, want 2", got)
	}
}
