// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package neows contains the wire types returned by NASA's Near Earth Object
Web Service (NeoWs).

Two payloads are modeled:

  - Feed: GET /neo/rest/v1/feed, every object with a close approach inside a
    date range. The upstream groups objects under dynamic date keys; Feed
    decodes that map into Days, an explicit slice ordered by date.
  - NeoRecord: GET /neo/rest/v1/neo/{id}, the full record for one object,
    including orbital elements and every known close approach.

NeoWs encodes velocities and distances as JSON strings. Those fields use the
Numeric type, which parses through ParseNumeric so that every numeric string
in a payload fails the same way (ErrMalformedNumber) when it cannot be read.
Orbital elements are left as strings and are never reparsed.
*/
package neows
