// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package tracker

import (
	"math"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/neoexplorer/internal/models/neows"
	"github.com/tomtom215/neoexplorer/internal/testinfra"
)

func approach(velocity, distance float64) neows.CloseApproach {
	return neows.CloseApproach{
		RelativeVelocity: neows.RelativeVelocity{KilometersPerHour: neows.Numeric(velocity)},
		MissDistance:     neows.MissDistance{Kilometers: neows.Numeric(distance)},
	}
}

func feedOf(elementCount int64, days ...[]neows.NeoRecord) *neows.Feed {
	feed := &neows.Feed{ElementCount: elementCount}
	for i, objects := range days {
		feed.Days = append(feed.Days, neows.FeedDay{Date: string(rune('a' + i)), Objects: objects})
	}
	return feed
}

func withApproaches(approaches ...neows.CloseApproach) neows.NeoRecord {
	return neows.NeoRecord{CloseApproachData: approaches}
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.Fastest != 0 {
		t.Errorf("Fastest = %v, want 0", s.Fastest)
	}
	if s.Closest != math.MaxFloat64 {
		t.Errorf("Closest = %v, want MaxFloat64", s.Closest)
	}
	if s.TotalSeen != 0 {
		t.Errorf("TotalSeen = %d, want 0", s.TotalSeen)
	}
	if s.HasClosest() {
		t.Error("HasClosest() = true for a new state")
	}
}

func TestUpdateForFeed_Scenario(t *testing.T) {
	t.Parallel()

	feed := feedOf(2, []neows.NeoRecord{withApproaches(approach(65260.57, 45290298.23))})
	got := UpdateForFeed(NewState(), feed)

	want := State{Fastest: 65260.57, Closest: 45290298.23, TotalSeen: 2}
	if got != want {
		t.Errorf("UpdateForFeed() = %+v, want %+v", got, want)
	}
}

func TestUpdateForFeed_Fixture(t *testing.T) {
	t.Parallel()

	var feed neows.Feed
	if err := json.Unmarshal([]byte(testinfra.FeedJSON), &feed); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := UpdateForFeed(NewState(), &feed)
	if got.Fastest != 70146.106302123 {
		t.Errorf("Fastest = %v, want 70146.106302123", got.Fastest)
	}
	if got.Closest != 4027962.697099799 {
		t.Errorf("Closest = %v, want 4027962.697099799", got.Closest)
	}
	if got.TotalSeen != 2 {
		t.Errorf("TotalSeen = %d, want 2", got.TotalSeen)
	}
}

func TestUpdateForFeed_TrustsElementCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		elementCount int64
		records      int
	}{
		{"count matches records", 3, 3},
		{"count above records", 10, 1},
		{"count below records", 1, 4},
		{"empty batch", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			objects := make([]neows.NeoRecord, tt.records)
			for i := range objects {
				objects[i] = withApproaches(approach(float64(i+1), float64(1000-i)))
			}
			start := State{Fastest: 5, Closest: 500, TotalSeen: 7}

			got := UpdateForFeed(start, feedOf(tt.elementCount, objects))
			if got.TotalSeen != start.TotalSeen+tt.elementCount {
				t.Errorf("TotalSeen = %d, want %d", got.TotalSeen, start.TotalSeen+tt.elementCount)
			}
		})
	}
}

func TestUpdateForFeed_Monotonic(t *testing.T) {
	t.Parallel()

	starts := []State{
		NewState(),
		{Fastest: 50000, Closest: 1e6, TotalSeen: 3},
		{Fastest: 1e9, Closest: 1, TotalSeen: 100},
	}
	feeds := []*neows.Feed{
		feedOf(0),
		feedOf(2, []neows.NeoRecord{withApproaches(approach(65260.57, 45290298.23))}, []neows.NeoRecord{withApproaches(approach(10, 5))}),
		feedOf(1, []neows.NeoRecord{withApproaches(approach(0, math.MaxFloat64))}),
	}

	for _, s := range starts {
		for _, f := range feeds {
			got := UpdateForFeed(s, f)
			if got.Fastest < s.Fastest {
				t.Errorf("Fastest decreased: %v -> %v", s.Fastest, got.Fastest)
			}
			if got.Closest > s.Closest {
				t.Errorf("Closest increased: %v -> %v", s.Closest, got.Closest)
			}
		}
	}
}

func TestUpdateForFeed_FirstApproachOnly(t *testing.T) {
	t.Parallel()

	rec := withApproaches(approach(100, 1000), approach(999999, 1))
	got := UpdateForFeed(NewState(), feedOf(1, []neows.NeoRecord{rec}))

	if got.Fastest != 100 {
		t.Errorf("Fastest = %v, want 100 (second approach ignored)", got.Fastest)
	}
	if got.Closest != 1000 {
		t.Errorf("Closest = %v, want 1000 (second approach ignored)", got.Closest)
	}
}

func TestUpdateForFeed_StrictComparison(t *testing.T) {
	t.Parallel()

	start := State{Fastest: 100, Closest: 1000, TotalSeen: 0}
	got := UpdateForFeed(start, feedOf(1, []neows.NeoRecord{withApproaches(approach(100, 1000))}))

	if got.Fastest != 100 || got.Closest != 1000 {
		t.Errorf("equal values changed state: %+v", got)
	}
}

func TestUpdateForFeed_AppliedTwiceCountsTwice(t *testing.T) {
	t.Parallel()

	feed := feedOf(2, []neows.NeoRecord{withApproaches(approach(65260.57, 45290298.23))})
	once := UpdateForFeed(NewState(), feed)
	twice := UpdateForFeed(once, feed)

	if twice.TotalSeen != 4 {
		t.Errorf("TotalSeen = %d, want 4", twice.TotalSeen)
	}
	if twice.Fastest != once.Fastest || twice.Closest != once.Closest {
		t.Errorf("extrema changed on replay: %+v -> %+v", once, twice)
	}
}

func TestUpdateForFeed_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	start := NewState()
	_ = UpdateForFeed(start, feedOf(2, []neows.NeoRecord{withApproaches(approach(1, 1))}))
	if start != NewState() {
		t.Errorf("input state mutated: %+v", start)
	}
}

func TestUpdateForLookup_AllApproaches(t *testing.T) {
	t.Parallel()

	var rec neows.NeoRecord
	if err := json.Unmarshal([]byte(testinfra.LookupJSON), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := UpdateForLookup(NewState(), &rec, DefaultPolicy())
	if got.Fastest != 78153.2912362558 {
		t.Errorf("Fastest = %v, want 78153.2912362558 from the first approach", got.Fastest)
	}
	if got.Closest != 45290298.225725659 {
		t.Errorf("Closest = %v, want 45290298.225725659 from the second approach", got.Closest)
	}
	if got.TotalSeen != 1 {
		t.Errorf("TotalSeen = %d, want 1", got.TotalSeen)
	}
}

// The two closest modes disagree on these inputs; both behaviors are pinned.
func TestUpdateForLookup_ClosestModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start State
		rec   neows.NeoRecord
		mode  ClosestMode
		want  float64
	}{
		{
			name:  "distance mode keeps the minimum",
			start: NewState(),
			rec:   withApproaches(approach(10, 100), approach(20, 500)),
			mode:  ClosestByDistance,
			want:  100,
		},
		{
			name:  "velocity gate overwrites with a larger distance",
			start: NewState(),
			rec:   withApproaches(approach(10, 100), approach(20, 500)),
			mode:  ClosestVelocityGate,
			want:  500,
		},
		{
			name:  "distance mode lowers past a fast approach",
			start: State{Closest: 50},
			rec:   withApproaches(approach(60, 10)),
			mode:  ClosestByDistance,
			want:  10,
		},
		{
			name:  "velocity gate blocks when velocity exceeds closest",
			start: State{Closest: 50},
			rec:   withApproaches(approach(60, 10)),
			mode:  ClosestVelocityGate,
			want:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := UpdateForLookup(tt.start, &tt.rec, Policy{Closest: tt.mode})
			if got.Closest != tt.want {
				t.Errorf("Closest = %v, want %v", got.Closest, tt.want)
			}
		})
	}
}

func TestUpdateForLookup_CountPolicy(t *testing.T) {
	t.Parallel()

	rec := withApproaches(approach(1, 1))
	start := State{TotalSeen: 5, Closest: math.MaxFloat64}

	counted := UpdateForLookup(start, &rec, Policy{CountLookups: true, Closest: ClosestByDistance})
	if counted.TotalSeen != 6 {
		t.Errorf("CountLookups=true: TotalSeen = %d, want 6", counted.TotalSeen)
	}

	uncounted := UpdateForLookup(start, &rec, Policy{CountLookups: false, Closest: ClosestByDistance})
	if uncounted.TotalSeen != 5 {
		t.Errorf("CountLookups=false: TotalSeen = %d, want 5", uncounted.TotalSeen)
	}
}

func TestUpdateForLookup_EmptyApproaches(t *testing.T) {
	t.Parallel()

	start := State{Fastest: 10, Closest: 20, TotalSeen: 3}
	rec := neows.NeoRecord{}

	policies := map[string]Policy{
		"default":           DefaultPolicy(),
		"velocity gate":     {Closest: ClosestVelocityGate},
		"counting gate":     {CountLookups: true, Closest: ClosestVelocityGate},
		"distance no count": {Closest: ClosestByDistance},
	}
	for name, policy := range policies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := UpdateForLookup(start, &rec, policy)
			if got != start {
				t.Errorf("UpdateForLookup() = %+v, want unchanged %+v", got, start)
			}
		})
	}
}

func TestParseClosestMode(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"distance", "velocity-gate"} {
		if _, err := ParseClosestMode(valid); err != nil {
			t.Errorf("ParseClosestMode(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseClosestMode("velocity"); err == nil {
		t.Error("ParseClosestMode(velocity) error = nil, want error")
	}
}
