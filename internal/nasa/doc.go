// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package nasa is the client for NASA's NeoWs REST API.

Three implementations of Client are layered by the server at startup:

	var c nasa.Client = nasa.NewRestyClient(cfg)       // transport, throttle, decode
	c = nasa.NewCircuitBreakerClient(c)                 // gobreaker protection
	c = nasa.NewCachingClient(c, ttl)                   // optional TTL cache

Errors:

  - *UpstreamError: NeoWs answered with a non-2xx status, or the request
    never completed (StatusCode is 0 and Err holds the transport error)
  - ErrMalformedPayload: the body did not decode into the NeoWs shape
  - gobreaker.ErrOpenState / gobreaker.ErrTooManyRequests: the breaker
    rejected the call without contacting NeoWs

No call is retried.
*/
package nasa
