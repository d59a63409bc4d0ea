// Package metrics provides the Prometheus metrics exposed by the gateway.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Upstream call outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

// TextContentType is the Content-Type of the text exposition format.
var TextContentType = string(expfmt.NewFormat(expfmt.TypeTextPlain))

// Metrics holds all Prometheus metrics for the application. It owns its own
// registry so that tests and multiple instances never share state.
type Metrics struct {
	Registry *prometheus.Registry

	// Heartrate is the last value pushed to /stats. Set overwrites; the gauge
	// never expires.
	Heartrate prometheus.Gauge

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration prometheus.Histogram
}

// New creates and registers all application metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	heartrate := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bang_heartrate",
		Help: "The amount of clients listening for clicks",
	})

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bang_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bang_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	upstreamRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bang_upstream_requests_total",
			Help: "Total number of requests to the travel information API",
		},
		[]string{"outcome"},
	)

	upstreamRequestDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bang_upstream_request_duration_seconds",
		Help:    "Travel information API latency distribution",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(
		heartrate,
		httpRequestsTotal,
		httpRequestDuration,
		upstreamRequestsTotal,
		upstreamRequestDuration,
	)

	return &Metrics{
		Registry:                registry,
		Heartrate:               heartrate,
		HTTPRequestsTotal:       httpRequestsTotal,
		HTTPRequestDuration:     httpRequestDuration,
		UpstreamRequestsTotal:   upstreamRequestsTotal,
		UpstreamRequestDuration: upstreamRequestDuration,
	}
}

// MaxHeartrate is the largest magnitude the float64 gauge holds exactly.
const MaxHeartrate int64 = 1 << 53

// SetHeartrate overwrites the heartrate gauge. Values beyond ±MaxHeartrate
// are rounded by the gauge; callers reject them first.
func (m *Metrics) SetHeartrate(value int64) {
	m.Heartrate.Set(float64(value))
}

// ObserveUpstream records one call to the travel information API.
func (m *Metrics) ObserveUpstream(outcome string, seconds float64) {
	m.UpstreamRequestsTotal.WithLabelValues(outcome).Inc()
	m.UpstreamRequestDuration.Observe(seconds)
}

// WriteText gathers the registry and writes it to w in the Prometheus text
// exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}
