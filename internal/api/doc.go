// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package api provides the HTTP layer of NEO Explorer.

It serves the server-rendered pages that browse the NASA NeoWs feed and
lookup endpoints, plus a small JSON surface for health checks and the
session tally.

Routes:

	GET  /                 index: date form and current tally
	GET  /neo?neo_date=D   redirect to /date/D
	GET  /neo/{id}         lookup page for one object
	GET  /date/{date}      feed page; optional ?end=YYYY-MM-DD
	POST /date/{date}      same as GET, for form posts
	POST /stats/reset      clear the tally, redirect to /
	GET  /api/v1/health    health and circuit breaker state
	GET  /api/v1/stats     tally as JSON (read-only)
	GET  /metrics          Prometheus metrics

Request flow:

Every page that observes objects follows the same order: validate the
request, load the tally from the session cookie, fetch from NeoWs, project
the payload into display rows, fold it into the tally, render into a
buffer, and only then write the updated cookie and the body. Any failure
before the cookie is written leaves the client's tally untouched.

Errors:

Upstream failures are mapped to status codes by classifyError and shown on
the HTML error page: 400 for invalid input, 404 for unknown reference ids,
502 for NeoWs or transport failures, 503 while the circuit breaker is open,
and 500 for payloads that cannot be projected.

Middleware:

Pages run behind request IDs, real-IP resolution, panic recovery, CORS,
per-IP rate limiting (go-chi/httprate), security headers with a strict
Content-Security-Policy, Prometheus instrumentation and gzip compression.
*/
package api
