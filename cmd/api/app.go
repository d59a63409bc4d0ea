package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bang.dev/gateway/internal/app"
	"bang.dev/gateway/internal/appconf"
	"bang.dev/gateway/internal/clock"
	"bang.dev/gateway/internal/logging"
	"bang.dev/gateway/internal/metrics"
	"bang.dev/gateway/internal/ns"
	"bang.dev/gateway/internal/restapi"
	"bang.dev/gateway/internal/trips"
)

// BuildApplication wires the application dependencies from cfg.
func BuildApplication(cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	if logger == nil {
		logger = logging.NewLogger(os.Stdout, cfg.Env == appconf.Production, cfg.Verbose)
	}

	selector, err := trips.NewSelector(cfg.SelectionStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to configure trip selection: %w", err)
	}

	appMetrics := metrics.New()
	client := ns.NewClient(cfg.NSAPIURL, cfg.NSToken, appMetrics,
		logger.With(slog.String("component", "ns_client")))

	return &app.Application{
		Config:  cfg,
		Logger:  logger,
		Clock:   clock.RealClock{},
		Metrics: appMetrics,
		Finder:  trips.NewFinder(client, selector, cfg.Location),
	}, nil
}

// CreateServer builds the HTTP server for application.
func CreateServer(application *app.Application, cfg appconf.Config) *http.Server {
	api := restapi.NewRestAPI(application)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logging.LogOperation(logger, "server_listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.LogOperation(logger, "server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func run() error {
	if err := appconf.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := appconf.LoadFromEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	application, err := BuildApplication(cfg, nil)
	if err != nil {
		return err
	}
	slog.SetDefault(application.Logger)

	logging.LogOperation(application.Logger, "server_configured",
		slog.String("env", cfg.Env.String()),
		slog.String("strategy", cfg.SelectionStrategy))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, CreateServer(application, cfg), application.Logger)
}
