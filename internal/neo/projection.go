// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package neo

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/neoexplorer/internal/models/neows"
)

// LinkPrefix is prepended to a reference id to build a lookup link.
const LinkPrefix = "/neo/"

// FeedEntry is one row of the feed page.
type FeedEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Velocity  string `json:"velocity"`
	Distance  string `json:"distance"`
	Time      string `json:"time"`
	Hazardous bool   `json:"hazardous"`
	Link      string `json:"link"`
}

// LookupEntry is the body of the lookup page.
type LookupEntry struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Diameter              string          `json:"diameter"`
	Hazardous             bool            `json:"hazardous"`
	Eccentricity          string          `json:"eccentricity"`
	Inclination           string          `json:"inclination"`
	OrbitClassType        string          `json:"orbit_class_type"`
	OrbitClassDescription string          `json:"orbit_class_description"`
	JPLURL                string          `json:"jpl_url"`
	Approaches            []ApproachEntry `json:"approaches"`
}

// ApproachEntry is one close approach on the lookup page.
type ApproachEntry struct {
	Date         string `json:"date"`
	Velocity     string `json:"velocity"`
	Distance     string `json:"distance"`
	OrbitingBody string `json:"orbiting_body"`
}

// ProjectFeed flattens a feed into entries ordered day by day, then by
// upstream order within the day. Sizes are the maximum estimated diameter in
// unit.
func ProjectFeed(feed *neows.Feed, unit string) ([]FeedEntry, error) {
	entries := make([]FeedEntry, 0, feed.RecordCount())
	for _, day := range feed.Days {
		for i := range day.Objects {
			rec := &day.Objects[i]

			approach, ok := rec.FirstApproach()
			if !ok {
				return nil, fmt.Errorf("%w: %s (%s) on %s", ErrMissingApproach, rec.NeoReferenceID, rec.Name, day.Date)
			}
			size, err := maxDiameter(rec, unit)
			if err != nil {
				return nil, err
			}

			entries = append(entries, FeedEntry{
				ID:        rec.NeoReferenceID,
				Name:      rec.Name,
				Size:      size,
				Velocity:  FormatNumber(approach.RelativeVelocity.KilometersPerHour.Float64()),
				Distance:  FormatNumber(approach.MissDistance.Kilometers.Float64()),
				Time:      approach.CloseApproachDateFull,
				Hazardous: rec.IsPotentiallyHazardousAsteroid,
				Link:      Link(rec.NeoReferenceID),
			})
		}
	}
	return entries, nil
}

// ProjectLookup maps a full record. Every close approach is kept, in order.
func ProjectLookup(rec *neows.NeoRecord, unit string) (LookupEntry, error) {
	if rec.OrbitalData == nil {
		return LookupEntry{}, fmt.Errorf("%w: %s", ErrMissingOrbitalData, rec.NeoReferenceID)
	}
	diameter, err := maxDiameter(rec, unit)
	if err != nil {
		return LookupEntry{}, err
	}

	approaches := make([]ApproachEntry, len(rec.CloseApproachData))
	for i, ca := range rec.CloseApproachData {
		approaches[i] = ApproachEntry{
			Date:         ca.CloseApproachDate,
			Velocity:     FormatNumber(ca.RelativeVelocity.KilometersPerHour.Float64()),
			Distance:     FormatNumber(ca.MissDistance.Kilometers.Float64()),
			OrbitingBody: ca.OrbitingBody,
		}
	}

	return LookupEntry{
		ID:                    rec.NeoReferenceID,
		Name:                  rec.Name,
		Diameter:              diameter,
		Hazardous:             rec.IsPotentiallyHazardousAsteroid,
		Eccentricity:          rec.OrbitalData.Eccentricity,
		Inclination:           rec.OrbitalData.Inclination,
		OrbitClassType:        rec.OrbitalData.OrbitClass.OrbitClassType,
		OrbitClassDescription: rec.OrbitalData.OrbitClass.OrbitClassDescription,
		JPLURL:                rec.NasaJPLURL,
		Approaches:            approaches,
	}, nil
}

// Link returns the lookup path for a reference id.
func Link(referenceID string) string {
	return LinkPrefix + referenceID
}

// FormatNumber renders v with the fewest digits that round-trip exactly.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxDiameter(rec *neows.NeoRecord, unit string) (string, error) {
	r, ok := rec.EstimatedDiameter.In(unit)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return FormatNumber(r.EstimatedDiameterMax), nil
}
