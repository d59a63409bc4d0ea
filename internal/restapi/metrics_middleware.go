package restapi

import (
	"net/http"
	"strconv"
	"time"

	"bang.dev/gateway/internal/metrics"
)

// MetricsHandler returns middleware that counts requests and observes their
// latency, labelled by route pattern. A nil m disables it.
func MetricsHandler(m *metrics.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			// r.Pattern is filled in by the ServeMux; raw paths would explode
			// label cardinality. Rejections are folded into "unmatched" so the
			// public exposition does not list protected routes.
			path := r.Pattern
			if path == "" || rec.statusCode == http.StatusNotFound || rec.statusCode == http.StatusMethodNotAllowed {
				path = "unmatched"
			}

			m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
