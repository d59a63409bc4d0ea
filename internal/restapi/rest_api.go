package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"bang.dev/gateway/internal/app"
)

// RestAPI serves the gateway endpoints.
type RestAPI struct {
	*app.Application
}

func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

// SetRoutes registers every endpoint on mux.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("POST /stats", CacheControlMiddleware(http.HandlerFunc(api.statsHandler)))
	mux.Handle("GET /metrics", CacheControlMiddleware(http.HandlerFunc(api.metricsHandler)))
	mux.Handle("GET /trains", CacheControlMiddleware(http.HandlerFunc(api.trainsHandler)))
	mux.Handle("GET /healthz", CacheControlMiddleware(http.HandlerFunc(api.healthHandler)))

	// Other methods on the protected paths get the empty 404 of a failed
	// credential check instead of the mux's 405 with an Allow header.
	mux.HandleFunc("/stats", api.sendNotFound)
	mux.HandleFunc("/trains", api.sendNotFound)
}

// Handler returns the routes wrapped in the middleware chain:
// request id, request logging, compression, metrics.
func (api *RestAPI) Handler() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)

	var handler http.Handler = mux
	handler = MetricsHandler(api.Metrics)(handler)
	handler = gzhttp.GzipHandler(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}
