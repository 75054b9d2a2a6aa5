// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

// Package tracker keeps the per-session "top trumps" tally: the fastest
// relative velocity seen, the closest miss distance seen and the number of
// objects seen.
//
// The update functions are pure. They take a State by value and return the
// next State; persisting it is the caller's job.
package tracker

import (
	"math"

	"github.com/tomtom215/neoexplorer/internal/models/neows"
)

// State is the running tally for one browser session.
//
// Fastest is in km/h and starts at 0. Closest is in km and starts at
// math.MaxFloat64 so that any real observation is smaller.
type State struct {
	Fastest   float64 `json:"fastest"`
	Closest   float64 `json:"closest"`
	TotalSeen int64   `json:"total_seen"`
}

// NewState returns the tally of a session that has seen nothing yet.
func NewState() State {
	return State{
		Fastest:   0,
		Closest:   math.MaxFloat64,
		TotalSeen: 0,
	}
}

// HasClosest reports whether a miss distance has been recorded.
func (s State) HasClosest() bool {
	return s.Closest != math.MaxFloat64
}

// UpdateForFeed folds a feed batch into s. Only the first close approach of
// each record is inspected. TotalSeen grows by the upstream element_count, not
// by the number of records iterated, so applying the same batch twice counts
// it twice.
func UpdateForFeed(s State, feed *neows.Feed) State {
	for _, day := range feed.Days {
		for i := range day.Objects {
			approach, ok := day.Objects[i].FirstApproach()
			if !ok {
				continue
			}
			s = observe(s, approach, ClosestByDistance)
		}
	}
	s.TotalSeen += feed.ElementCount
	return s
}

// UpdateForLookup folds a single looked-up record into s, inspecting every
// close approach. A record with no approaches leaves the whole state
// unchanged, TotalSeen included, whatever the policy.
func UpdateForLookup(s State, rec *neows.NeoRecord, policy Policy) State {
	if len(rec.CloseApproachData) == 0 {
		return s
	}
	for _, approach := range rec.CloseApproachData {
		s = observe(s, approach, policy.Closest)
	}
	if policy.CountLookups {
		s.TotalSeen++
	}
	return s
}

func observe(s State, approach neows.CloseApproach, mode ClosestMode) State {
	velocity := approach.RelativeVelocity.KilometersPerHour.Float64()
	distance := approach.MissDistance.Kilometers.Float64()

	if velocity > s.Fastest {
		s.Fastest = velocity
	}

	switch mode {
	case ClosestVelocityGate:
		// Legacy lookup behavior: the distance accumulator is gated on the
		// approach velocity, then overwritten with the approach distance.
		// This can raise Closest as well as lower it.
		if s.Closest > velocity {
			s.Closest = distance
		}
	default:
		if distance < s.Closest {
			s.Closest = distance
		}
	}
	return s
}
