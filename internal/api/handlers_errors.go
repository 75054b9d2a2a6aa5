// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package api

import (
	"context"
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/neoexplorer/internal/logging"
	"github.com/tomtom215/neoexplorer/internal/nasa"
	"github.com/tomtom215/neoexplorer/internal/render"
)

// failure is an error resolved to what the user sees.
type failure struct {
	status  int
	message string
}

// classifyError maps a fetch, projection or render error to a response.
//
//   - circuit open or half-open probe limit: 503
//   - NeoWs 404 (unknown reference id): 404
//   - any other NeoWs or transport failure: 502
//   - malformed payloads, missing data, render failures: 500
func classifyError(err error) failure {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return failure{http.StatusServiceUnavailable, "NeoWs is temporarily unavailable. Please try again in a few minutes."}
	}

	var upstream *nasa.UpstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.StatusCode == http.StatusNotFound:
			return failure{http.StatusNotFound, "NeoWs has no object with that reference id."}
		case errors.Is(upstream.Err, context.DeadlineExceeded):
			return failure{http.StatusBadGateway, "NeoWs did not answer in time."}
		default:
			return failure{http.StatusBadGateway, "NeoWs could not be reached."}
		}
	}

	if errors.Is(err, nasa.ErrMalformedPayload) {
		return failure{http.StatusInternalServerError, "NeoWs returned data this server could not read."}
	}

	return failure{http.StatusInternalServerError, "The page could not be built."}
}

// handleError logs err and writes the matching error page.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, op string, err error) {
	f := classifyError(err)

	event := logging.Ctx(r.Context()).Error()
	if f.status < http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Warn()
	}
	event.Err(err).
		Str("op", op).
		Int("status", f.status).
		Msg("Request failed")

	h.renderError(w, r, f.status, f.message)
}

// renderError writes the HTML error page. If the error page itself cannot be
// rendered, a plain-text body is written instead.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, messages ...string) {
	page := render.ErrorPage{
		Status:    status,
		Title:     http.StatusText(status),
		Messages:  messages,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}

	if err := h.renderer.Render(w, status, render.PageError, page); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render error page")
		http.Error(w, http.StatusText(status), status)
	}
}

// NotFound renders the 404 page for unrouted paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "There is nothing at this address.")
}

// MethodNotAllowed renders the 405 page.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusMethodNotAllowed)
}

// TooManyRequests renders the 429 page for rate-limited clients.
func (h *Handler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusTooManyRequests, "Too many requests. Please slow down.")
}
