// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package tracker

import "fmt"

// ClosestMode selects how a lookup updates the closest miss distance.
type ClosestMode string

const (
	// ClosestByDistance lowers Closest when an approach distance is smaller.
	ClosestByDistance ClosestMode = "distance"

	// ClosestVelocityGate reproduces the legacy lookup comparison, which
	// tests Closest against the approach velocity before storing the
	// approach distance.
	ClosestVelocityGate ClosestMode = "velocity-gate"
)

// ParseClosestMode validates a configured mode name.
func ParseClosestMode(s string) (ClosestMode, error) {
	switch ClosestMode(s) {
	case ClosestByDistance, ClosestVelocityGate:
		return ClosestMode(s), nil
	default:
		return "", fmt.Errorf("unknown closest mode %q: must be %q or %q", s, ClosestByDistance, ClosestVelocityGate)
	}
}

// Policy controls the lookup update. Feed updates are not configurable.
type Policy struct {
	// CountLookups adds one to TotalSeen per lookup.
	CountLookups bool

	// Closest selects the closest-distance comparison used by lookups.
	Closest ClosestMode
}

// DefaultPolicy counts lookups and compares distance to distance.
func DefaultPolicy() Policy {
	return Policy{
		CountLookups: true,
		Closest:      ClosestByDistance,
	}
}
