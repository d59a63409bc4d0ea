package restapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCompressesLargeResponses(t *testing.T) {
	api := createTestApi(t, "http://127.0.0.1:1", "next")

	// Populate a few latency histograms so the exposition is large enough
	// to be worth compressing.
	serve(api, withBearer(httptest.NewRequest(http.MethodPost, "/stats", strings.NewReader(`{"heartrate": 72}`)), testToken))
	serve(api, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	serve(api, httptest.NewRequest(http.MethodGet, trainsPath, nil))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(api, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	assert.Contains(t, string(body), "bang_heartrate 72")
}

func TestHandlerUnknownRoute(t *testing.T) {
	api := createTestApi(t, "http://127.0.0.1:1", "next")

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/where/current-time.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
