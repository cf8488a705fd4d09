package runner

import (
	"context"
	"log/slog"
	"net/http"
)

// metricsListener is the slice of *http.Server the runner drives; tests
// substitute a stub.
type metricsListener interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
}

type netMetricsListener struct {
	srv *http.Server
}

func newMetricsListener(port string, handler http.Handler, logger *slog.Logger) netMetricsListener {
	mux := http.NewServeMux()
	mux.Handle("/metrics", scrapeLogging(logger, handler))
	return netMetricsListener{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
}

func (s netMetricsListener) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netMetricsListener) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netMetricsListener) Addr() string                       { return s.srv.Addr }
