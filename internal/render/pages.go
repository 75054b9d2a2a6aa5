// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package render

import (
	"github.com/tomtom215/neoexplorer/internal/neo"
	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// IndexPage is the landing page with the date form.
type IndexPage struct {
	Tally tracker.State
}

// FeedPage lists every object approaching between Start and End.
type FeedPage struct {
	Start   string
	End     string
	Entries []neo.FeedEntry
	Unit    string

	// PrevLink and NextLink page to the adjacent ranges of the same length.
	PrevLink string
	NextLink string

	Tally tracker.State
}

// LookupPage shows one object and its full approach history.
type LookupPage struct {
	NEO   neo.LookupEntry
	Unit  string
	Tally tracker.State
}

// ErrorPage explains why a request could not be served.
type ErrorPage struct {
	Status    int
	Title     string
	Messages  []string
	RequestID string
}
