// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// Capture is a request received by NeoWsServer.
type Capture struct {
	Method string
	Path   string
	Query  url.Values
}

// NeoWsServer is an httptest server that answers like the NeoWs REST API.
// Feed requests get FeedJSON and lookups get LookupJSON unless overridden.
type NeoWsServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	captures []Capture

	// FeedStatus and FeedBody override the feed response.
	FeedStatus int
	FeedBody   string

	// LookupStatus and LookupBody override the lookup response.
	LookupStatus int
	LookupBody   string
}

// NewNeoWsServer starts a fake NeoWs API and registers its shutdown with t.
func NewNeoWsServer(t *testing.T) *NeoWsServer {
	t.Helper()

	s := &NeoWsServer{
		FeedStatus:   http.StatusOK,
		FeedBody:     FeedJSON,
		LookupStatus: http.StatusOK,
		LookupBody:   LookupJSON,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Server.Close)
	return s
}

func (s *NeoWsServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.captures = append(s.captures, Capture{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
	})
	status, body := http.StatusNotFound, `{"error":"not found"}`
	switch {
	case r.URL.Path == "/neo/rest/v1/feed":
		status, body = s.FeedStatus, s.FeedBody
	case strings.HasPrefix(r.URL.Path, "/neo/rest/v1/neo/"):
		status, body = s.LookupStatus, s.LookupBody
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// URL returns the base URL of the server.
func (s *NeoWsServer) URL() string {
	return s.Server.URL
}

// Captures returns a copy of every request received so far.
func (s *NeoWsServer) Captures() []Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Capture, len(s.captures))
	copy(out, s.captures)
	return out
}

// SetFeed replaces the feed response.
func (s *NeoWsServer) SetFeed(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FeedStatus, s.FeedBody = status, body
}

// SetLookup replaces the lookup response.
func (s *NeoWsServer) SetLookup(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LookupStatus, s.LookupBody = status, body
}
