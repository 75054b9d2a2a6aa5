// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"

	"github.com/tomtom215/neoexplorer/internal/tracker"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(Config{CookieName: "neo_tally", HashKey: testKey})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

// roundTrip saves state and returns a request carrying the resulting cookie.
func roundTrip(t *testing.T, s *Store, state tracker.State) (*http.Request, *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := s.Save(rec, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Save() set %d cookies, want 1", len(cookies))
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return req, cookies[0]
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	want := tracker.State{Fastest: 65260.5699103704, Closest: 45290298.225725659, TotalSeen: 2}
	req, _ := roundTrip(t, s, want)

	got, ok := s.Load(req)
	if !ok {
		t.Fatal("Load() ok = false, want true")
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStore_FreshStateSurvivesRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	req, _ := roundTrip(t, s, tracker.NewState())
	got, ok := s.Load(req)
	if !ok || got.HasClosest() {
		t.Errorf("Load() = %+v, %v, want a fresh state with no closest", got, ok)
	}
}

func TestStore_CookieAttributes(t *testing.T) {
	t.Parallel()
	s, err := NewStore(Config{CookieName: "neo_tally", HashKey: testKey, Secure: true})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	_, cookie := roundTrip(t, s, tracker.NewState())

	if cookie.Name != "neo_tally" {
		t.Errorf("Name = %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("HttpOnly = false")
	}
	if !cookie.Secure {
		t.Error("Secure = false")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want Strict", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Errorf("Path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Errorf("cookie should be browser-session scoped, got MaxAge=%d Expires=%v", cookie.MaxAge, cookie.Expires)
	}
}

func TestStore_LoadRejects(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	other, err := NewStore(Config{CookieName: "neo_tally", HashKey: []byte("ffffffffffffffffffffffffffffffff")})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	_, foreign := roundTrip(t, other, tracker.State{Fastest: 1e9, Closest: 1, TotalSeen: 100})

	negative, err := securecookie.New(testKey, nil).
		SetSerializer(securecookie.JSONEncoder{}).
		Encode("neo_tally", tracker.State{Fastest: -1, Closest: 10, TotalSeen: 1})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"garbage", &http.Cookie{Name: "neo_tally", Value: "not-a-cookie"}},
		{"signed with another key", &http.Cookie{Name: "neo_tally", Value: foreign.Value}},
		{"implausible values", &http.Cookie{Name: "neo_tally", Value: negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			got, ok := s.Load(req)
			if ok {
				t.Error("Load() ok = true, want false")
			}
			if got != tracker.NewState() {
				t.Errorf("Load() = %+v, want fresh state", got)
			}
		})
	}
}

func TestStore_TamperedValue(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, cookie := roundTrip(t, s, tracker.State{Fastest: 10, Closest: 10, TotalSeen: 1})
	tampered := strings.Replace(cookie.Value, cookie.Value[len(cookie.Value)-4:], "AAAA", 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "neo_tally", Value: tampered})
	if _, ok := s.Load(req); ok {
		t.Error("Load() accepted a tampered cookie")
	}
}

func TestNewStore_Keys(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(Config{CookieName: "c", HashKey: []byte("short")}); !errors.Is(err, ErrHashKeyTooShort) {
		t.Errorf("NewStore(short key) error = %v, want ErrHashKeyTooShort", err)
	}

	s, err := NewStore(Config{CookieName: "c"})
	if err != nil {
		t.Fatalf("NewStore(no key) error = %v", err)
	}
	if !s.Ephemeral() {
		t.Error("Ephemeral() = false for a generated key")
	}
	if newTestStore(t).Ephemeral() {
		t.Error("Ephemeral() = true for a configured key")
	}
}
