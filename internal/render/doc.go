// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package render turns page view models into HTML.

Pages are html/template files embedded into the binary. Every page is parsed
together with layout.html into its own template set, so pages can each define
"title" and "content" blocks without clashing.

Render executes into a buffer first. When execution fails nothing has been
written to the response, and the caller is free to send an error page instead.

Template functions:

  - formatStat: float64 with thousands separators and two decimals
  - formatCount: int64 with thousands separators
  - hazardLabel: "Potentially hazardous" or "Not hazardous"
  - closestStat: the closest distance of a tally, or a dash when none is recorded
*/
package render
