// Package ns is a client for the NS travel information (reisinformatie) API.
package ns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bang.dev/gateway/internal/logging"
	"bang.dev/gateway/internal/metrics"
	"bang.dev/gateway/internal/trips"
)

// SubscriptionKeyHeader carries the API subscription token.
const SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

const maxBodySize = 10 * 1024 * 1024

// ErrUpstream matches every failure to obtain a usable trip list.
var ErrUpstream = errors.New("travel information API failure")

type Kind int

const (
	// KindTransport covers network, DNS and connection failures.
	KindTransport Kind = iota
	// KindDecode covers non-200 answers and bodies that are not a trip list.
	KindDecode
)

func (k Kind) String() string {
	if k == KindTransport {
		return "transport"
	}
	return "decode"
}

// UpstreamError is returned by Client.Trips.
type UpstreamError struct {
	Kind Kind
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("travel information API %s error: %v", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

type tripsResponse struct {
	Trips []trips.Trip `json:"trips"`
}

// Client issues trip searches. The zero HTTPClient means http.DefaultClient:
// calls are neither retried nor given a timeout beyond the transport defaults.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

func NewClient(baseURL, token string, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: http.DefaultClient,
		Metrics:    m,
		Logger:     logger,
	}
}

// Trips searches the trips from query.From to query.To around query.DateTime.
func (c *Client) Trips(ctx context.Context, query trips.Query) ([]trips.Trip, error) {
	start := time.Now()

	found, err := c.fetch(ctx, query)

	outcome := metrics.OutcomeSuccess
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		outcome = metrics.OutcomeDecode
		if upstreamErr.Kind == KindTransport {
			outcome = metrics.OutcomeTransport
		}
	}
	if c.Metrics != nil {
		c.Metrics.ObserveUpstream(outcome, time.Since(start).Seconds())
	}

	return found, err
}

func (c *Client) fetch(ctx context.Context, query trips.Query) ([]trips.Trip, error) {
	endpoint, err := c.tripsURL(query)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, Err: err}
	}
	req.Header.Set(SubscriptionKeyHeader, c.Token)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, Err: fmt.Errorf("failed to execute trips request: %w", err)}
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger(ctx), "ns_response_body")

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Kind: KindDecode, Err: fmt.Errorf("trips request returned %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(body) > maxBodySize {
		return nil, &UpstreamError{Kind: KindDecode, Err: fmt.Errorf("response exceeds size limit of %d bytes", maxBodySize)}
	}

	var decoded tripsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &UpstreamError{Kind: KindDecode, Err: fmt.Errorf("failed to decode trips: %w", err)}
	}

	return decoded.Trips, nil
}

func (c *Client) tripsURL(query trips.Query) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}

	u := base.JoinPath("api", "v3", "trips")
	params := url.Values{}
	params.Set("dateTime", query.DateTime)
	params.Set("fromStation", query.From)
	params.Set("toStation", query.To)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// logger prefers the request-scoped logger carried by ctx.
func (c *Client) logger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, c.Logger)
}
