// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package neows

import (
	"sort"

	"github.com/goccy/go-json"
)

// Feed is the response of the feed endpoint.
//
// Days is ordered by date key. The order of records inside a day is kept
// exactly as received.
type Feed struct {
	Links        FeedLinks `json:"links"`
	ElementCount int64     `json:"element_count"`
	Days         []FeedDay `json:"-"`
}

// FeedDay groups the records whose first close approach falls on Date.
type FeedDay struct {
	Date    string
	Objects []NeoRecord
}

// FeedLinks are the navigation links of a feed page. NeoWs has published the
// previous page under both "prev" and "previous".
type FeedLinks struct {
	Next     string `json:"next"`
	Prev     string `json:"prev,omitempty"`
	Previous string `json:"previous,omitempty"`
	Self     string `json:"self"`
}

// PreviousLink returns whichever previous-page link is present.
func (l FeedLinks) PreviousLink() string {
	if l.Prev != "" {
		return l.Prev
	}
	return l.Previous
}

// RecordCount returns the number of records across all days.
func (f *Feed) RecordCount() int {
	n := 0
	for _, day := range f.Days {
		n += len(day.Objects)
	}
	return n
}

// UnmarshalJSON decodes the date-keyed near_earth_objects map into Days.
func (f *Feed) UnmarshalJSON(data []byte) error {
	var raw struct {
		Links            FeedLinks              `json:"links"`
		ElementCount     int64                  `json:"element_count"`
		NearEarthObjects map[string][]NeoRecord `json:"near_earth_objects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dates := make([]string, 0, len(raw.NearEarthObjects))
	for date := range raw.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]FeedDay, 0, len(dates))
	for _, date := range dates {
		days = append(days, FeedDay{Date: date, Objects: raw.NearEarthObjects[date]})
	}

	f.Links = raw.Links
	f.ElementCount = raw.ElementCount
	f.Days = days
	return nil
}
