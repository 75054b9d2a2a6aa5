// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package neo projects NeoWs payloads into the flat view models rendered by the
feed and lookup pages.

ProjectFeed flattens a feed into one FeedEntry per record, day by day, using
only the first close approach of each record. A feed record with no close
approach is an upstream contract violation and fails the whole projection
with ErrMissingApproach; no zero values are ever emitted in its place.

ProjectLookup maps a single record and keeps every close approach in upstream
order. Eccentricity and inclination are copied through as the exact decimal
text NeoWs sent.

Both functions are pure: they read their input and allocate a new result.
*/
package neo
