package runner

import (
	"log/slog"
	"net/http"
	"time"

	"gameday-hub/internal/logging"
)

// scrapeLogging logs each request the metrics listener serves.
func scrapeLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		logging.Debug(logger, "metrics scrape",
			logging.FieldPath, r.URL.Path,
			logging.FieldStatusCode, ww.status,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
