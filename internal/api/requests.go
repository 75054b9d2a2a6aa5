// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/neoexplorer/internal/validation"
)

// FeedRequest is a feed page request: /date/{date}?end=YYYY-MM-DD.
type FeedRequest struct {
	Start string `param:"date" validate:"required,neodate"`
	End   string `param:"end" validate:"omitempty,neodate"`
}

// LookupRequest is a lookup page request: /neo/{id}.
type LookupRequest struct {
	ID string `param:"id" validate:"required,number,max=20"`
}

// DateSearchRequest is the index form submission: /neo?neo_date=YYYY-MM-DD.
type DateSearchRequest struct {
	Date string `param:"neo_date" validate:"required,neodate"`
}

// parseFeedRequest validates the feed parameters. A missing end means a
// single-day feed. The returned messages are user-facing.
func (h *Handler) parseFeedRequest(r *http.Request) (FeedRequest, []string) {
	req := FeedRequest{
		Start: chi.URLParam(r, "date"),
		End:   r.URL.Query().Get("end"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return req, verr.Messages()
	}
	if req.End == "" {
		req.End = req.Start
	}

	// neodate already guarantees both parse.
	start, _ := time.Parse(validation.DateLayout, req.Start)
	end, _ := time.Parse(validation.DateLayout, req.End)

	if end.Before(start) {
		return req, []string{"end must not be before date"}
	}
	if days := int(end.Sub(start).Hours() / 24); days > h.maxRangeDays {
		return req, []string{fmt.Sprintf("date range must not exceed %d days", h.maxRangeDays)}
	}
	return req, nil
}

func parseLookupRequest(r *http.Request) (LookupRequest, []string) {
	req := LookupRequest{ID: chi.URLParam(r, "id")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return req, verr.Messages()
	}
	return req, nil
}

func parseDateSearchRequest(r *http.Request) (DateSearchRequest, []string) {
	req := DateSearchRequest{Date: r.URL.Query().Get("neo_date")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return req, verr.Messages()
	}
	return req, nil
}

// feedPath returns the local feed page path for a date range.
func feedPath(start, end string) string {
	path := "/date/" + url.PathEscape(start)
	if end != "" && end != start {
		path += "?end=" + url.QueryEscape(end)
	}
	return path
}

// localFeedLink converts a NeoWs paging link into a local feed path. NeoWs
// links carry the api_key, so they are never shown to users directly. An
// empty or unusable link yields "".
func localFeedLink(upstream string) string {
	if upstream == "" {
		return ""
	}
	u, err := url.Parse(upstream)
	if err != nil {
		return ""
	}

	req := FeedRequest{
		Start: u.Query().Get("start_date"),
		End:   u.Query().Get("end_date"),
	}
	if validation.ValidateStruct(&req) != nil {
		return ""
	}
	return feedPath(req.Start, req.End)
}
