// Command server runs the timesheet validation HTTP API. The profile comes
// from APP_PROFILE; SIGINT or SIGTERM drains in-flight requests before exit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	adapthttp "github.com/jsamuelsen11/timesheet-service/internal/adapters/http"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/store"
	"github.com/jsamuelsen11/timesheet-service/internal/app"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/health"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

// shippedProfiles have a file under configs/.
var shippedProfiles = []string{"local", "dev", "prod"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := profileFromEnv()
	if err != nil {
		return err
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	provide(injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	logger.Info("service configured",
		slog.String("profile", profile),
		slog.String("store_driver", cfg.Store.Driver),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}
	<-serveErr

	logger.Info("shutdown complete")
	return nil
}

func profileFromEnv() (string, error) {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return "", fmt.Errorf("APP_PROFILE is required (%s)", strings.Join(shippedProfiles, ", "))
	}
	return profile, nil
}

// provide registers the service graph. Providers resolve lazily, so
// invoking the server builds everything it reaches.
func provide(i do.Injector) {
	do.Provide(i, func(i do.Injector) (store.Backend, error) {
		return store.Open(afero.NewOsFs(),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		)
	})

	do.Provide(i, func(i do.Injector) (ports.TimesheetService, error) {
		v := do.MustInvoke[*config.Config](i).Validation
		return app.NewTimesheetService(
			do.MustInvoke[store.Backend](i),
			app.Options{
				DuplicateCheckTimeout: v.DuplicateCheckTimeout,
				BatchConcurrency:      v.BatchConcurrency,
				MaxBatchSize:          v.MaxBatchSize,
			},
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	// Readiness reflects the entry store the duplicate checker depends on.
	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[store.Backend](i))
		return registry, nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return adapthttp.NewRouter(
			handlers.NewTimesheetHandler(do.MustInvoke[ports.TimesheetService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(
			do.MustInvoke[*config.Config](i).Server,
			do.MustInvoke[nethttp.Handler](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}
