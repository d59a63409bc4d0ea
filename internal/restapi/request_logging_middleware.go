package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"bang.dev/gateway/internal/logging"
)

// NewRequestLoggingMiddleware logs every request once it has been served and
// makes logger, tagged with the request id, available to handlers through the
// request context.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestLogger := logger.With(slog.String("request_id", GetRequestID(r.Context())))
			r = r.WithContext(logging.WithLogger(r.Context(), requestLogger))
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logging.LogHTTPRequest(logger,
				r.Method,
				r.URL.Path,
				rec.statusCode,
				float64(time.Since(start).Nanoseconds())/1e6,
				slog.String("request_id", GetRequestID(r.Context())),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}
