package restapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bang.dev/gateway/internal/app"
	"bang.dev/gateway/internal/appconf"
	"bang.dev/gateway/internal/clock"
	"bang.dev/gateway/internal/metrics"
	"bang.dev/gateway/internal/ns"
	"bang.dev/gateway/internal/trips"
)

const (
	testToken   = "test-token"
	testNSToken = "test-ns-token"
)

// testUpstream fakes the travel information API. handler receives every
// trips request; requests counts them.
type testUpstream struct {
	server   *httptest.Server
	requests atomic.Int64
}

func newTestUpstream(t *testing.T, handler http.HandlerFunc) *testUpstream {
	t.Helper()
	upstream := &testUpstream{}
	upstream.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream.requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(upstream.server.Close)
	return upstream
}

// upstreamReplying returns a handler that answers every trips request with body.
func upstreamReplying(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

// createTestApi builds a RestAPI backed by upstreamURL with the given
// selection strategy and a clock fixed at 2024-05-01 10:00 Amsterdam time.
func createTestApi(t *testing.T, upstreamURL string, strategy string) *RestAPI {
	t.Helper()

	location, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	selector, err := trips.NewSelector(strategy)
	if err != nil {
		t.Fatalf("failed to create selector: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	application := &app.Application{
		Config: appconf.Config{
			Address:           "127.0.0.1",
			Port:              0,
			Token:             testToken,
			NSToken:           testNSToken,
			NSAPIURL:          upstreamURL,
			SelectionStrategy: strategy,
			Location:          location,
			Env:               appconf.Test,
		},
		Logger:  logger,
		Clock:   clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, location)),
		Metrics: m,
		Finder: trips.NewFinder(
			ns.NewClient(upstreamURL, testNSToken, m, logger),
			selector,
			location,
		),
	}

	return NewRestAPI(application)
}

// serve runs req through the full middleware chain.
func serve(api *RestAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	return rec
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
