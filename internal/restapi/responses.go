package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bang.dev/gateway/internal/logging"
	"bang.dev/gateway/internal/models"
)

// requestLogger returns the logger the request logging middleware attached
// to r, or the application logger.
func (api *RestAPI) requestLogger(r *http.Request) *slog.Logger {
	return logging.FromContextOr(r.Context(), api.Logger)
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}

func (api *RestAPI) sendJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(w)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.LogError(api.requestLogger(r), "failed to write response", err,
			slog.String("path", r.URL.Path))
	}
}

// sendNotFound replies 404 with an empty body. Failed credential checks use
// it as well so that protected endpoints do not reveal themselves.
func (api *RestAPI) sendNotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// serverErrorResponse replies 500 with the error text as plain text.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.requestLogger(r), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	api.sendJSON(w, r, http.StatusBadRequest, models.ValidationErrorResponse{
		Code:        http.StatusBadRequest,
		Text:        "invalid request",
		FieldErrors: fieldErrors,
	})
}

func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendJSON(w, r, http.StatusBadRequest, models.ValidationErrorResponse{
		Code: http.StatusBadRequest,
		Text: message,
	})
}
