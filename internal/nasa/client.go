// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package nasa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/neoexplorer/internal/logging"
	"github.com/tomtom215/neoexplorer/internal/metrics"
	"github.com/tomtom215/neoexplorer/internal/models/neows"
)

// Client fetches NeoWs data. Implementations are safe for concurrent use.
type Client interface {
	// Feed returns the objects whose close approaches fall between start and
	// end inclusive (YYYY-MM-DD).
	Feed(ctx context.Context, start, end string) (*neows.Feed, error)

	// Lookup returns a single object with its full approach history.
	Lookup(ctx context.Context, id string) (*neows.NeoRecord, error)
}

// Endpoint names used in errors and metric labels.
const (
	EndpointFeed   = "feed"
	EndpointLookup = "lookup"
)

const apiPrefix = "/neo/rest/v1"

// Config configures a RestyClient.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// RequestsPerHour throttles outbound calls; 0 disables throttling.
	RequestsPerHour int
}

// Ensure RestyClient implements Client
var _ Client = (*RestyClient)(nil)

// RestyClient talks to NeoWs over HTTP.
type RestyClient struct {
	http    *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewRestyClient creates a NeoWs client. Retries are disabled.
func NewRestyClient(cfg Config) *RestyClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+apiPrefix).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "neoexplorer")

	var limiter *rate.Limiter
	if cfg.RequestsPerHour > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Hour/time.Duration(cfg.RequestsPerHour)), throttleBurst(cfg.RequestsPerHour))
	}

	return &RestyClient{
		http:    client,
		apiKey:  cfg.APIKey,
		limiter: limiter,
	}
}

// throttleBurst allows roughly a minute's worth of requests at once.
func throttleBurst(perHour int) int {
	if burst := perHour / 60; burst > 1 {
		return burst
	}
	return 1
}

// Feed implements Client.
func (c *RestyClient) Feed(ctx context.Context, start, end string) (*neows.Feed, error) {
	req := c.http.R().
		SetQueryParam("start_date", start).
		SetQueryParam("end_date", end)

	var feed neows.Feed
	if err := c.do(ctx, EndpointFeed, req, "/feed", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Lookup implements Client.
func (c *RestyClient) Lookup(ctx context.Context, id string) (*neows.NeoRecord, error) {
	req := c.http.R().SetPathParam("id", id)

	var rec neows.NeoRecord
	if err := c.do(ctx, EndpointLookup, req, "/neo/{id}", &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// do runs a GET and decodes a 2xx body into out.
func (c *RestyClient) do(ctx context.Context, endpoint string, req *resty.Request, path string, out interface{}) error {
	if err := c.wait(ctx); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}

	start := time.Now()
	resp, err := req.
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		Get(path)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordNeoWsRequest(endpoint, "transport", duration)
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}

	if !resp.IsSuccess() {
		metrics.RecordNeoWsRequest(endpoint, "http_error", duration)
		logging.Ctx(ctx).Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Dur("duration", duration).
			Msg("NeoWs returned an error status")
		return &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       truncateBody(resp.Body()),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		metrics.RecordNeoWsRequest(endpoint, "malformed", duration)
		return fmt.Errorf("%w: %s: %w", ErrMalformedPayload, endpoint, err)
	}

	metrics.RecordNeoWsRequest(endpoint, "ok", duration)
	logging.Ctx(ctx).Debug().
		Str("endpoint", endpoint).
		Dur("duration", duration).
		Msg("NeoWs request completed")
	return nil
}

// wait blocks on the outbound limiter when throttling is enabled.
func (c *RestyClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	start := time.Now()
	err := c.limiter.Wait(ctx)
	metrics.NeoWsThrottleWait.Observe(time.Since(start).Seconds())
	return err
}
