// Package runner drives one process lifetime: metrics listener, page render,
// output writes and graceful shutdown.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gameday-hub/internal/app"
	"gameday-hub/internal/config"
	"gameday-hub/internal/datasource"
	"gameday-hub/internal/logging"
	"gameday-hub/internal/metrics"
	"gameday-hub/internal/page"
	"gameday-hub/internal/poller"
)

var metricsSetup = metrics.Setup

// Runner renders the page template into the output file and, in live mode,
// keeps it current until the context ends.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	metricsServer metricsListener
	metricsStop   func(context.Context) error
	source        datasource.Source
}

// New constructs a Runner with sources and telemetry built from cfg.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	source := datasource.New(cfg.Data.Dir, cfg.Fetch.Timeout, cfg.Fetch.Retries,
		datasource.WithRetryLogger(logger),
	)
	return newRunnerWithDeps(cfg, logger, recorder, metricsSrv, metricsShutdown, source)
}

// newRunnerWithDeps is used for testing to inject custom components.
func newRunnerWithDeps(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, metricsSrv metricsListener, metricsStop func(context.Context) error, source datasource.Source) *Runner {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
		source:        source,
	}
}

// Run renders the page once and writes it. In live mode it then flushes
// changes on an interval until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.startMetrics()
	defer r.shutdownMetrics()

	doc, err := page.Load(r.cfg.Page.Template)
	if err != nil {
		return err
	}
	binding := page.Bind(doc, nil)
	loader := datasource.NewLoader(r.source, r.cfg.Data,
		datasource.WithLogger(r.logger),
		datasource.WithMetrics(r.metrics),
	)
	a := app.New(r.cfg, binding, loader,
		app.WithLogger(r.logger),
		app.WithMetrics(r.metrics),
	)
	defer r.closeApp(a)

	if err := a.Init(ctx); err != nil {
		return fmt.Errorf("initialize page: %w", err)
	}
	if err := doc.WriteFile(r.cfg.Page.Output); err != nil {
		return err
	}
	logging.Info(r.logger, "page written", logging.FieldPath, r.cfg.Page.Output)

	if !r.cfg.Timing.Live {
		return nil
	}

	flusher := poller.New(flushTask, func(context.Context) error {
		wrote, err := doc.FlushIfDirty(r.cfg.Page.Output)
		if wrote {
			logging.Debug(r.logger, "page flushed", logging.FieldPath, r.cfg.Page.Output)
		}
		return err
	}, r.cfg.Timing.FlushInterval,
		poller.WithImmediate(false),
		poller.WithQuietCycles(),
		poller.WithLogger(r.logger),
		poller.WithMetrics(r.metrics),
	)
	flusher.Start(ctx)
	logging.Info(r.logger, "live mode running",
		logging.FieldTask, flushTask,
		logging.FieldDurationMS, r.cfg.Timing.FlushInterval.Milliseconds(),
	)

	<-ctx.Done()
	logging.Info(r.logger, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := flusher.Stop(shutdownCtx); err != nil {
		logging.Error(r.logger, "failed to stop flusher", err)
	}
	if err := a.Close(shutdownCtx); err != nil {
		logging.Error(r.logger, "failed to stop timers", err)
	}
	if _, err := doc.FlushIfDirty(r.cfg.Page.Output); err != nil {
		return err
	}
	logging.Info(r.logger, "shutdown complete")
	return nil
}

func (r *Runner) closeApp(a *app.App) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Close(shutdownCtx); err != nil {
		logging.Warn(r.logger, "failed to stop timers", err)
	}
}

func (r *Runner) startMetrics() {
	if r.metricsServer == nil {
		return
	}
	launchServer("metrics", r.metricsServer, r.logger)
}

func (r *Runner) shutdownMetrics() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", err)
		}
	}
	if r.metricsServer != nil {
		if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics server shutdown failed", err)
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, metricsListener, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv metricsListener
	if handler != nil && recCfg.Enabled {
		metricsSrv = newMetricsListener(recCfg.Port, handler, logger)
	}

	return rec, metricsSrv, shutdown
}

// launchServer serves in the background. A metrics listener failure is
// logged and never stops the render.
func launchServer(name string, srv metricsListener, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", err)
		}
	}()
}
