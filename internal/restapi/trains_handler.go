package restapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bang.dev/gateway/internal/trips"
)

// trainsHandler returns the origin of the selected departure leg between
// the from and to stations.
func (api *RestAPI) trainsHandler(w http.ResponseWriter, r *http.Request) {
	if !api.RequestHasValidBearer(r) || !api.HasUpstreamCredential() {
		api.sendNotFound(w, r)
		return
	}

	query := tripQueryFromRequest(r)
	if fieldErrors := query.Validate(); fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stop, err := api.Finder.Find(r.Context(), query)
	switch {
	case err == nil:
		api.sendJSON(w, r, http.StatusOK, stop)
	case errors.Is(err, trips.ErrNoDeparture):
		api.requestLogger(r).Debug("no qualifying departure",
			slog.String("from", query.From),
			slog.String("to", query.To),
			slog.String("strategy", api.Finder.Selector.Name()))
		api.sendNotFound(w, r)
	case errors.Is(err, trips.ErrInvalidReferenceTime):
		api.validationErrorResponse(w, r, map[string][]string{
			"current_time_string": {err.Error()},
		})
	default:
		// upstream transport/decode failures and malformed upstream data
		api.serverErrorResponse(w, r, err)
	}
}

// tripQueryFromRequest reads current_time_string, or its decomposed form
// date + time, and the from/to station codes.
func tripQueryFromRequest(r *http.Request) trips.Query {
	params := r.URL.Query()

	dateTime := strings.TrimSpace(params.Get("current_time_string"))
	if dateTime == "" {
		date := strings.TrimSpace(params.Get("date"))
		clock := strings.TrimSpace(params.Get("time"))
		if date != "" && clock != "" {
			dateTime = date + "T" + clock
		}
	}

	return trips.Query{
		DateTime: dateTime,
		From:     strings.TrimSpace(params.Get("from")),
		To:       strings.TrimSpace(params.Get("to")),
	}
}
