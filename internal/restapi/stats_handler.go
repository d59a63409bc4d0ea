package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"bang.dev/gateway/internal/metrics"
	"bang.dev/gateway/internal/models"
)

const maxStatsBodySize = 4 * 1024

// statsHandler overwrites the heartrate gauge with the pushed value.
func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	if !api.RequestHasValidBearer(r) {
		api.sendNotFound(w, r)
		return
	}

	var push models.StatsPush
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStatsBodySize))
	if err := decoder.Decode(&push); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			api.badRequestResponse(w, r, "request body too large")
		case errors.Is(err, io.EOF):
			api.badRequestResponse(w, r, "request body must not be empty")
		default:
			api.badRequestResponse(w, r, "request body must be a JSON object")
		}
		return
	}

	if push.Heartrate == nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"heartrate": {"missing required field"},
		})
		return
	}

	if *push.Heartrate > metrics.MaxHeartrate || *push.Heartrate < -metrics.MaxHeartrate {
		api.validationErrorResponse(w, r, map[string][]string{
			"heartrate": {fmt.Sprintf("must be between -%d and %d", metrics.MaxHeartrate, metrics.MaxHeartrate)},
		})
		return
	}

	api.Metrics.SetHeartrate(*push.Heartrate)
	api.requestLogger(r).Debug("heartrate updated", slog.Int64("heartrate", *push.Heartrate))

	w.WriteHeader(http.StatusOK)
}
