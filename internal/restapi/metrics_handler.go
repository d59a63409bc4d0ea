package restapi

import (
	"bytes"
	"net/http"

	"bang.dev/gateway/internal/logging"
	"bang.dev/gateway/internal/metrics"
)

// metricsHandler writes every registered metric in the text exposition format.
// The body is buffered so an encoding failure can still become a 500.
func (api *RestAPI) metricsHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := api.Metrics.WriteText(&buf); err != nil {
		logging.LogError(api.requestLogger(r), "error providing metrics", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", metrics.TextContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(api.requestLogger(r), "failed to write metrics", err)
	}
}
