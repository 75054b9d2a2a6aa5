// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package services adapts NEO Explorer components to suture.Service.

  - HTTPServerService: runs *http.Server, draining connections on shutdown
  - PeriodicService: runs a function on a ticker
  - NewCacheJanitor: PeriodicService that sweeps the NeoWs response cache
  - NewUptimeReporter: PeriodicService that updates the uptime gauge

Every service returns ctx.Err() when its context ends and implements
fmt.Stringer so supervisor events name it.
*/
package services
