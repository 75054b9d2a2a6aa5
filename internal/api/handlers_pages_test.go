// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package api

import (
	"net/http"
	"strings"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/neoexplorer/internal/render"
	"github.com/tomtom215/neoexplorer/internal/testinfra"
	"github.com/tomtom215/neoexplorer/internal/tracker"
)

func TestIndex_FirstVisitStartsSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{`name="neo_date"`, `action="/neo"`, `<dd class="total-seen">0</dd>`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	cookie := tallyCookie(rec)
	if cookie == nil {
		t.Fatal("first visit set no tally cookie")
	}
	if got := env.decodeTally(t, cookie); got != tracker.NewState() {
		t.Errorf("tally = %+v, want fresh state", got)
	}
	if len(env.neows.Captures()) != 0 {
		t.Error("index must not call NeoWs")
	}
}

func TestIndex_ExistingSessionUnchanged(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	cookie := env.cookieFor(t, tracker.State{Fastest: 1234.5, Closest: 99, TotalSeen: 3})

	rec := env.do(http.MethodGet, "/", cookie)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if tallyCookie(rec) != nil {
		t.Error("index rewrote an existing tally cookie")
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<dd class="fastest">1,234.50</dd>`,
		`<dd class="closest">99.00</dd>`,
		`<dd class="total-seen">3</dd>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDateSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"valid date", "/neo?neo_date=2015-09-07", http.StatusSeeOther, "/date/2015-09-07"},
		{"missing date", "/neo", http.StatusBadRequest, ""},
		{"malformed date", "/neo?neo_date=07-09-2015", http.StatusBadRequest, ""},
		{"impossible date", "/neo?neo_date=2015-02-30", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			rec := env.do(http.MethodGet, tt.target)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
			if tt.wantStatus == http.StatusBadRequest && !strings.Contains(rec.Body.String(), "neo_date") {
				t.Error("error page does not name the neo_date field")
			}
			if len(env.neows.Captures()) != 0 {
				t.Error("date search must not call NeoWs")
			}
		})
	}
}

func TestFeed_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate+"?end="+testinfra.FeedEndDate)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"(2015 RC)",
		"465633 (2009 JR5)",
		`href="/neo/3726710"`,
		`href="/neo/2465633"`,
		`class="hazardous"`,
		`<dd class="fastest">70,146.11</dd>`,
		`<dd class="closest">4,027,962.70</dd>`,
		`<dd class="total-seen">2</dd>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "api_key") || strings.Contains(body, "DEMO_KEY") {
		t.Error("body leaks the NeoWs api_key")
	}

	caps := env.neows.Captures()
	if len(caps) != 1 {
		t.Fatalf("NeoWs calls = %d, want 1", len(caps))
	}
	q := caps[0].Query
	if q.Get("start_date") != testinfra.FeedStartDate || q.Get("end_date") != testinfra.FeedEndDate {
		t.Errorf("upstream range = %s..%s", q.Get("start_date"), q.Get("end_date"))
	}
	if q.Get("api_key") != "TEST_KEY" {
		t.Errorf("api_key = %q, want TEST_KEY", q.Get("api_key"))
	}

	cookie := tallyCookie(rec)
	if cookie == nil {
		t.Fatal("feed set no tally cookie")
	}
	want := tracker.State{Fastest: 70146.106302123, Closest: 4027962.697099799, TotalSeen: 2}
	if got := env.decodeTally(t, cookie); got != want {
		t.Errorf("tally = %+v, want %+v", got, want)
	}
}

func TestFeed_AccumulatesAcrossRequests(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	prior := env.cookieFor(t, tracker.State{Fastest: 100000, Closest: 5, TotalSeen: 10})

	rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate+"?end="+testinfra.FeedEndDate, prior)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	want := tracker.State{Fastest: 100000, Closest: 5, TotalSeen: 12}
	if got := env.decodeTally(t, tallyCookie(rec)); got != want {
		t.Errorf("tally = %+v, want %+v", got, want)
	}
}

func TestFeed_SingleDayAndPost(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			rec := env.do(method, "/date/"+testinfra.FeedStartDate)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			q := env.neows.Captures()[0].Query
			if q.Get("start_date") != testinfra.FeedStartDate || q.Get("end_date") != testinfra.FeedStartDate {
				t.Errorf("upstream range = %s..%s, want a single day", q.Get("start_date"), q.Get("end_date"))
			}
		})
	}
}

func TestFeed_PagingLinksAreLocal(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate+"?end="+testinfra.FeedEndDate)

	body := rec.Body.String()
	for _, want := range []string{
		`href="/date/2015-09-05?end=2015-09-06"`,
		`href="/date/2015-09-09?end=2015-09-10"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing paging link %q", want)
		}
	}
}

func TestFeed_InvalidRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"malformed start", "/date/2015-9-7", "date must be a date in YYYY-MM-DD format"},
		{"malformed end", "/date/2015-09-07?end=tomorrow", "end must be a date in YYYY-MM-DD format"},
		{"end before start", "/date/2015-09-07?end=2015-09-06", "end must not be before date"},
		{"range too long", "/date/2015-09-01?end=2015-09-09", "date range must not exceed 7 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			rec := env.do(http.MethodGet, tt.target)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if !strings.Contains(rec.Body.String(), tt.wantMsg) {
				t.Errorf("body missing %q", tt.wantMsg)
			}
			if tallyCookie(rec) != nil {
				t.Error("invalid request wrote the tally cookie")
			}
			if len(env.neows.Captures()) != 0 {
				t.Error("invalid request reached NeoWs")
			}
		})
	}
}

func TestFeed_RangeAtLimitAllowed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/date/2015-09-01?end=2015-09-08")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestFeed_FailuresLeaveTallyUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"upstream server error", http.StatusInternalServerError, `{"error":"boom"}`, http.StatusBadGateway},
		{"upstream bad request", http.StatusBadRequest, `{"error_message":"bad range"}`, http.StatusBadGateway},
		{"malformed payload", http.StatusOK, `{"near_earth_objects": [`, http.StatusInternalServerError},
		{"malformed number", http.StatusOK, strings.Replace(testinfra.FeedJSON, `"70146.106302123"`, `"fast"`, 1), http.StatusInternalServerError},
		{"record without approaches", http.StatusOK, testinfra.EmptyApproachFeedJSON, http.StatusInternalServerError},
		{"approach without miss distance", http.StatusOK, approachOnlyFeed(`"relative_velocity": {"kilometers_per_hour": "100"}`), http.StatusInternalServerError},
		{"approach without velocity", http.StatusOK, approachOnlyFeed(`"miss_distance": {"kilometers": "100"}`), http.StatusInternalServerError},
		{"null miss distance", http.StatusOK, approachOnlyFeed(`"relative_velocity": {"kilometers_per_hour": "100"}, "miss_distance": {"kilometers": null}`), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.neows.SetFeed(tt.status, tt.body)
			prior := env.cookieFor(t, tracker.State{Fastest: 1, Closest: 2, TotalSeen: 3})

			rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate, prior)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tallyCookie(rec) != nil {
				t.Error("failed request wrote the tally cookie")
			}
			if !strings.Contains(rec.Body.String(), "Back to search") {
				t.Error("failure did not render the error page")
			}
		})
	}
}

// approachOnlyFeed builds a one-object feed whose single approach has the
// given fields.
func approachOnlyFeed(fields string) string {
	return `{
		"links": {},
		"element_count": 1,
		"near_earth_objects": {
			"2015-09-07": [{
				"id": "1", "neo_reference_id": "1", "name": "x",
				"close_approach_data": [{"close_approach_date": "2015-09-07", ` + fields + `}]
			}]
		}
	}`
}

func TestFeed_RenderFailureLeavesTallyUntouched(t *testing.T) {
	t.Parallel()
	engine, err := render.New()
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}
	env := newTestEnv(t, withRenderer(failingRenderer{inner: engine}))

	rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if tallyCookie(rec) != nil {
		t.Error("render failure wrote the tally cookie")
	}
}

func TestFeed_CircuitOpen(t *testing.T) {
	t.Parallel()
	client := &stubClient{err: gobreaker.ErrOpenState}
	env := newTestEnv(t, withClient(client))

	rec := env.do(http.MethodGet, "/date/"+testinfra.FeedStartDate)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1", client.calls)
	}
	if tallyCookie(rec) != nil {
		t.Error("open circuit wrote the tally cookie")
	}
}

func TestLookup_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/neo/"+testinfra.LookupID)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		"465633 (2009 JR5)",
		`<dd class="eccentricity">0.675827388781843</dd>`,
		`<dd class="inclination">3.953546969678739</dd>`,
		`href="/date/1900-06-01"`,
		`href="/date/2015-09-08"`,
		`<dd class="fastest">78,153.29</dd>`,
		`<dd class="closest">45,290,298.23</dd>`,
		`<dd class="total-seen">1</dd>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	caps := env.neows.Captures()
	if len(caps) != 1 || caps[0].Path != "/neo/rest/v1/neo/"+testinfra.LookupID {
		t.Fatalf("captures = %+v", caps)
	}

	want := tracker.State{Fastest: 78153.2912362558, Closest: 45290298.225725659, TotalSeen: 1}
	if got := env.decodeTally(t, tallyCookie(rec)); got != want {
		t.Errorf("tally = %+v, want %+v", got, want)
	}
}

func TestLookup_PolicyWithoutCounting(t *testing.T) {
	t.Parallel()
	policy := tracker.DefaultPolicy()
	policy.CountLookups = false
	env := newTestEnv(t, withPolicy(policy))

	rec := env.do(http.MethodGet, "/neo/"+testinfra.LookupID)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := env.decodeTally(t, tallyCookie(rec)); got.TotalSeen != 0 {
		t.Errorf("TotalSeen = %d, want 0", got.TotalSeen)
	}
}

func TestLookup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		status     int
		body       string
		wantStatus int
		wantCalls  int
	}{
		{"non-numeric id", "/neo/abc", 0, "", http.StatusBadRequest, 0},
		{"id too long", "/neo/" + strings.Repeat("1", 21), 0, "", http.StatusBadRequest, 0},
		{"unknown id", "/neo/999", http.StatusNotFound, `{"code":404}`, http.StatusNotFound, 1},
		{"upstream down", "/neo/999", http.StatusServiceUnavailable, `oops`, http.StatusBadGateway, 1},
		{"approach without kilometers", "/neo/999", http.StatusOK, strings.Replace(testinfra.LookupJSON, `"kilometers": "72686446.131706385",`, ``, 1), http.StatusInternalServerError, 1},
		{"missing orbital data", "/neo/999", http.StatusOK, `{"id":"999","neo_reference_id":"999","name":"x","close_approach_data":[]}`, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			if tt.status != 0 {
				env.neows.SetLookup(tt.status, tt.body)
			}

			rec := env.do(http.MethodGet, tt.target)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := len(env.neows.Captures()); got != tt.wantCalls {
				t.Errorf("NeoWs calls = %d, want %d", got, tt.wantCalls)
			}
			if tallyCookie(rec) != nil {
				t.Error("failed lookup wrote the tally cookie")
			}
		})
	}
}

func TestResetStats(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	prior := env.cookieFor(t, tracker.State{Fastest: 1, Closest: 2, TotalSeen: 3})

	rec := env.do(http.MethodPost, "/stats/reset", prior)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if got := env.decodeTally(t, tallyCookie(rec)); got != tracker.NewState() {
		t.Errorf("tally = %+v, want fresh state", got)
	}
}

func TestResetStats_GetNotAllowed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/stats/reset")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/no/such/page")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "There is nothing at this address.") {
		t.Error("404 page missing its message")
	}
	if !strings.Contains(body, `class="request-id"`) {
		t.Error("404 page missing the request id")
	}
}

func TestPages_SecurityHeaders(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/")

	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("page response missing Content-Security-Policy")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}
}
