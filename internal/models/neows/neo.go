// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package neows

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Diameter units published in estimated_diameter.
const (
	UnitKilometers = "kilometers"
	UnitMeters     = "meters"
	UnitMiles      = "miles"
	UnitFeet       = "feet"
)

// NeoRecord is a single near-earth object. Feed results omit Designation and
// OrbitalData; lookup results carry both.
type NeoRecord struct {
	Links                          NeoLinks          `json:"links"`
	ID                             string            `json:"id"`
	NeoReferenceID                 string            `json:"neo_reference_id"`
	Name                           string            `json:"name"`
	Designation                    string            `json:"designation,omitempty"`
	NasaJPLURL                     string            `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH             float64           `json:"absolute_magnitude_h"`
	EstimatedDiameter              EstimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardousAsteroid bool              `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData              []CloseApproach   `json:"close_approach_data"`
	OrbitalData                    *OrbitalData      `json:"orbital_data,omitempty"`
	IsSentryObject                 bool              `json:"is_sentry_object"`
}

// FirstApproach returns the first close approach, which for feed results is
// the approach that placed the object in its day bucket.
func (r *NeoRecord) FirstApproach() (CloseApproach, bool) {
	if len(r.CloseApproachData) == 0 {
		return CloseApproach{}, false
	}
	return r.CloseApproachData[0], true
}

// NeoLinks holds the self link of a record.
type NeoLinks struct {
	Self string `json:"self"`
}

// EstimatedDiameter is the diameter range in each published unit.
type EstimatedDiameter struct {
	Kilometers DiameterRange `json:"kilometers"`
	Meters     DiameterRange `json:"meters"`
	Miles      DiameterRange `json:"miles"`
	Feet       DiameterRange `json:"feet"`
}

// DiameterRange is the min/max estimate for one unit.
type DiameterRange struct {
	EstimatedDiameterMin float64 `json:"estimated_diameter_min"`
	EstimatedDiameterMax float64 `json:"estimated_diameter_max"`
}

// In returns the range for the named unit. The second result is false for
// unknown units.
func (d EstimatedDiameter) In(unit string) (DiameterRange, bool) {
	switch unit {
	case UnitKilometers:
		return d.Kilometers, true
	case UnitMeters:
		return d.Meters, true
	case UnitMiles:
		return d.Miles, true
	case UnitFeet:
		return d.Feet, true
	default:
		return DiameterRange{}, false
	}
}

// CloseApproach is one pass of the object near a body.
type CloseApproach struct {
	CloseApproachDate      string           `json:"close_approach_date"`
	CloseApproachDateFull  string           `json:"close_approach_date_full"`
	EpochDateCloseApproach int64            `json:"epoch_date_close_approach"`
	RelativeVelocity       RelativeVelocity `json:"relative_velocity"`
	MissDistance           MissDistance     `json:"miss_distance"`
	OrbitingBody           string           `json:"orbiting_body"`
}

// UnmarshalJSON decodes an approach and requires the kilometre-based
// velocity and miss distance. Absent or null values fail with
// ErrMalformedNumber instead of decoding as 0.
func (c *CloseApproach) UnmarshalJSON(data []byte) error {
	type plain CloseApproach
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var present struct {
		RelativeVelocity *struct {
			KilometersPerHour *json.RawMessage `json:"kilometers_per_hour"`
		} `json:"relative_velocity"`
		MissDistance *struct {
			Kilometers *json.RawMessage `json:"kilometers"`
		} `json:"miss_distance"`
	}
	if err := json.Unmarshal(data, &present); err != nil {
		return err
	}

	switch {
	case present.RelativeVelocity == nil:
		return fmt.Errorf("%w: relative_velocity missing", ErrMalformedNumber)
	case isAbsent(present.RelativeVelocity.KilometersPerHour):
		return fmt.Errorf("%w: relative_velocity.kilometers_per_hour missing", ErrMalformedNumber)
	case present.MissDistance == nil:
		return fmt.Errorf("%w: miss_distance missing", ErrMalformedNumber)
	case isAbsent(present.MissDistance.Kilometers):
		return fmt.Errorf("%w: miss_distance.kilometers missing", ErrMalformedNumber)
	}

	*c = CloseApproach(decoded)
	return nil
}

func isAbsent(raw *json.RawMessage) bool {
	return raw == nil || string(*raw) == "null"
}

// RelativeVelocity of the approach.
type RelativeVelocity struct {
	KilometersPerSecond Numeric `json:"kilometers_per_second"`
	KilometersPerHour   Numeric `json:"kilometers_per_hour"`
	MilesPerHour        Numeric `json:"miles_per_hour"`
}

// MissDistance of the approach.
type MissDistance struct {
	Astronomical Numeric `json:"astronomical"`
	Lunar        Numeric `json:"lunar"`
	Kilometers   Numeric `json:"kilometers"`
	Miles        Numeric `json:"miles"`
}

// OrbitalData holds the orbit determination for a looked-up object. The
// elements are opaque decimal text and are never reparsed.
type OrbitalData struct {
	OrbitID                   string     `json:"orbit_id"`
	OrbitDeterminationDate    string     `json:"orbit_determination_date"`
	FirstObservationDate      string     `json:"first_observation_date"`
	LastObservationDate       string     `json:"last_observation_date"`
	DataArcInDays             int64      `json:"data_arc_in_days"`
	ObservationsUsed          int64      `json:"observations_used"`
	OrbitUncertainty          string     `json:"orbit_uncertainty"`
	MinimumOrbitIntersection  string     `json:"minimum_orbit_intersection"`
	JupiterTisserandInvariant string     `json:"jupiter_tisserand_invariant"`
	EpochOsculation           string     `json:"epoch_osculation"`
	Eccentricity              string     `json:"eccentricity"`
	SemiMajorAxis             string     `json:"semi_major_axis"`
	Inclination               string     `json:"inclination"`
	AscendingNodeLongitude    string     `json:"ascending_node_longitude"`
	OrbitalPeriod             string     `json:"orbital_period"`
	PerihelionDistance        string     `json:"perihelion_distance"`
	PerihelionArgument        string     `json:"perihelion_argument"`
	AphelionDistance          string     `json:"aphelion_distance"`
	PerihelionTime            string     `json:"perihelion_time"`
	MeanAnomaly               string     `json:"mean_anomaly"`
	MeanMotion                string     `json:"mean_motion"`
	Equinox                   string     `json:"equinox"`
	OrbitClass                OrbitClass `json:"orbit_class"`
}

// OrbitClass describes the orbit family (Apollo, Aten, Amor...).
type OrbitClass struct {
	OrbitClassType        string `json:"orbit_class_type"`
	OrbitClassDescription string `json:"orbit_class_description"`
	OrbitClassRange       string `json:"orbit_class_range"`
}
