// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package api

import (
	"net/http"

	"github.com/tomtom215/neoexplorer/internal/logging"
	"github.com/tomtom215/neoexplorer/internal/metrics"
	"github.com/tomtom215/neoexplorer/internal/neo"
	"github.com/tomtom215/neoexplorer/internal/render"
	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// Index renders the date form and the current tally. A first visit starts
// the session by writing a fresh tally cookie.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	state, existing := h.sessions.Load(r)

	body, err := h.renderer.Execute(render.PageIndex, render.IndexPage{Tally: state})
	if err != nil {
		h.handleError(w, r, "index", err)
		return
	}

	if !existing {
		if err := h.sessions.Save(w, state); err != nil {
			h.handleError(w, r, "index", err)
			return
		}
	}
	writeHTML(w, r, body)
}

// DateSearch is the target of the index form. It redirects to the feed page
// so that feed URLs are shareable.
func (h *Handler) DateSearch(w http.ResponseWriter, r *http.Request) {
	req, problems := parseDateSearchRequest(r)
	if problems != nil {
		h.renderError(w, r, http.StatusBadRequest, problems...)
		return
	}
	http.Redirect(w, r, feedPath(req.Date, ""), http.StatusSeeOther)
}

// Feed renders every object approaching in the requested range and folds the
// batch into the session tally.
//
// The tally cookie is written only after the fetch, the projection and the
// render have all succeeded.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	req, problems := h.parseFeedRequest(r)
	if problems != nil {
		h.renderError(w, r, http.StatusBadRequest, problems...)
		return
	}

	state, _ := h.sessions.Load(r)

	feed, err := h.client.Feed(r.Context(), req.Start, req.End)
	if err != nil {
		h.handleError(w, r, "feed", err)
		return
	}

	entries, err := neo.ProjectFeed(feed, h.unit)
	if err != nil {
		h.handleError(w, r, "feed", err)
		return
	}

	next := tracker.UpdateForFeed(state, feed)

	body, err := h.renderer.Execute(render.PageFeed, render.FeedPage{
		Start:    req.Start,
		End:      req.End,
		Entries:  entries,
		Unit:     h.unit,
		PrevLink: localFeedLink(feed.Links.PreviousLink()),
		NextLink: localFeedLink(feed.Links.Next),
		Tally:    next,
	})
	if err != nil {
		h.handleError(w, r, "feed", err)
		return
	}

	if err := h.sessions.Save(w, next); err != nil {
		h.handleError(w, r, "feed", err)
		return
	}

	metrics.RecordProjection("feed", len(entries), countHazardous(entries))
	metrics.RecordTallyUpdate("feed")
	logging.Ctx(r.Context()).Debug().
		Str("start", req.Start).
		Str("end", req.End).
		Int("objects", len(entries)).
		Int64("element_count", feed.ElementCount).
		Msg("Feed rendered")

	writeHTML(w, r, body)
}

// Lookup renders one object with its full approach history and folds every
// approach into the session tally according to the configured policy.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	req, problems := parseLookupRequest(r)
	if problems != nil {
		h.renderError(w, r, http.StatusBadRequest, problems...)
		return
	}

	state, _ := h.sessions.Load(r)

	rec, err := h.client.Lookup(r.Context(), req.ID)
	if err != nil {
		h.handleError(w, r, "lookup", err)
		return
	}

	entry, err := neo.ProjectLookup(rec, h.unit)
	if err != nil {
		h.handleError(w, r, "lookup", err)
		return
	}

	next := tracker.UpdateForLookup(state, rec, h.policy)

	body, err := h.renderer.Execute(render.PageLookup, render.LookupPage{
		NEO:   entry,
		Unit:  h.unit,
		Tally: next,
	})
	if err != nil {
		h.handleError(w, r, "lookup", err)
		return
	}

	if err := h.sessions.Save(w, next); err != nil {
		h.handleError(w, r, "lookup", err)
		return
	}

	hazardous := 0
	if entry.Hazardous {
		hazardous = 1
	}
	metrics.RecordProjection("lookup", 1, hazardous)
	metrics.RecordTallyUpdate("lookup")

	writeHTML(w, r, body)
}

// ResetStats clears the session tally and returns to the index.
func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Save(w, tracker.NewState()); err != nil {
		h.handleError(w, r, "reset", err)
		return
	}
	metrics.RecordTallyUpdate("reset")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeHTML(w http.ResponseWriter, r *http.Request, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write response body")
	}
}

func countHazardous(entries []neo.FeedEntry) int {
	n := 0
	for _, e := range entries {
		if e.Hazardous {
			n++
		}
	}
	return n
}
