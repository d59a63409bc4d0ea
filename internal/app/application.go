package app

import (
	"log/slog"

	"bang.dev/gateway/internal/appconf"
	"bang.dev/gateway/internal/clock"
	"bang.dev/gateway/internal/metrics"
	"bang.dev/gateway/internal/trips"
)

// Application holds the dependencies shared by the HTTP handlers and
// middleware. Metrics owns the heartrate gauge that /stats writes and
// /metrics reads.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Clock   clock.Clock
	Metrics *metrics.Metrics
	Finder  *trips.Finder
}
