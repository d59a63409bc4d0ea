package restapi

import (
	"net/http"

	"bang.dev/gateway/internal/models"
)

// healthHandler reports liveness and the selection strategy in use. It
// returns 503 when the application was built without its dependencies.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	if api.Application == nil || api.Metrics == nil || api.Finder == nil || api.Clock == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	api.sendJSON(w, r, http.StatusOK,
		models.NewHealthResponse("ok", api.Finder.Selector.Name(), api.Clock.Now()))
}
