// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

// Package session stores the tracker tally in a signed browser cookie.
//
// The cookie is HMAC-signed with gorilla/securecookie so a client cannot
// forge a tally, but it is not encrypted: the values are not secret. It has
// no Max-Age or Expires attribute and disappears with the browser session.
package session

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// MinHashKeyLength is the shortest signing key accepted.
const MinHashKeyLength = 32

// ErrHashKeyTooShort is returned by NewStore for keys under MinHashKeyLength.
var ErrHashKeyTooShort = errors.New("session hash key too short")

// Config configures a Store.
type Config struct {
	CookieName string

	// HashKey signs cookies. Empty generates a random key, so tallies do not
	// survive a restart.
	HashKey []byte

	Secure bool
}

// Store reads and writes the tally cookie.
type Store struct {
	name      string
	secure    bool
	codec     *securecookie.SecureCookie
	ephemeral bool
}

// NewStore creates a Store.
func NewStore(cfg Config) (*Store, error) {
	key := cfg.HashKey
	ephemeral := false
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(MinHashKeyLength)
		if key == nil {
			return nil, errors.New("failed to generate session hash key")
		}
		ephemeral = true
	}
	if len(key) < MinHashKeyLength {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrHashKeyTooShort, len(key), MinHashKeyLength)
	}

	codec := securecookie.New(key, nil)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Store{
		name:      cfg.CookieName,
		secure:    cfg.Secure,
		codec:     codec,
		ephemeral: ephemeral,
	}, nil
}

// Ephemeral reports whether the signing key was generated at startup.
func (s *Store) Ephemeral() bool {
	return s.ephemeral
}

// Load returns the tally carried by r. A missing, tampered, expired or
// nonsensical cookie yields tracker.NewState() and false.
func (s *Store) Load(r *http.Request) (tracker.State, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return tracker.NewState(), false
	}

	var state tracker.State
	if err := s.codec.Decode(s.name, cookie.Value, &state); err != nil {
		return tracker.NewState(), false
	}
	if !plausible(state) {
		return tracker.NewState(), false
	}
	return state, true
}

// Save writes state as the tally cookie.
func (s *Store) Save(w http.ResponseWriter, state tracker.State) error {
	encoded, err := s.codec.Encode(s.name, state)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// plausible rejects values no sequence of updates can produce.
func plausible(s tracker.State) bool {
	if math.IsNaN(s.Fastest) || math.IsNaN(s.Closest) || math.IsInf(s.Fastest, 0) || math.IsInf(s.Closest, 0) {
		return false
	}
	return s.Fastest >= 0 && s.Closest >= 0 && s.TotalSeen >= 0
}
