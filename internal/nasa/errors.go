// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package nasa

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedPayload is returned when a NeoWs response cannot be decoded.
var ErrMalformedPayload = errors.New("malformed NeoWs payload")

// maxErrorBodySize bounds how much of an error body is kept for logs.
const maxErrorBodySize = 64 * 1024

// UpstreamError describes a failed NeoWs round trip.
type UpstreamError struct {
	Endpoint   string // "feed" or "lookup"
	StatusCode int    // 0 when no response was received
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("NeoWs %s request failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("NeoWs %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// clientSide reports whether NeoWs rejected the request itself (bad id, bad
// date range) rather than failing. 429 is a capacity problem and does not count.
func (e *UpstreamError) clientSide() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// truncateBody keeps at most maxErrorBodySize bytes of an error body.
func truncateBody(body []byte) string {
	if len(body) > maxErrorBodySize {
		return string(body[:maxErrorBodySize]) + "\n... (truncated)"
	}
	return string(body)
}
