// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - Compression: pooled gzip (klauspost/compress) for HTML pages

All middleware use the http.HandlerFunc signature; the API router adapts them
to chi with its chiMiddleware helper.
*/
package middleware
