package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gameday-hub/internal/config"
	"gameday-hub/internal/domain"
	"gameday-hub/internal/domain/games"
	"gameday-hub/internal/logging"
	"gameday-hub/internal/metrics"
)

// Document names used in logs and metrics.
const (
	DocSchedule = "schedule"
	DocMeta     = "meta"
	DocRankings = "rankings"
	DocLines    = "lines"
	DocPlaces   = "places"
	DocCalendar = "calendar"
)

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder *metrics.Recorder) LoaderOption {
	return func(l *Loader) { l.metrics = recorder }
}

// WithClock overrides the time source used for link cache-busters.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// Loader reads each document best-effort: any failure is logged, counted and
// replaced by the document's empty value.
type Loader struct {
	source  Source
	files   config.DataConfig
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewLoader wraps source with the document names in files.
func NewLoader(source Source, files config.DataConfig, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: source,
		files:  files,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Schedule returns the season's games, or nil.
func (l *Loader) Schedule(ctx context.Context) []games.Game {
	list, _ := loadJSON[[]games.Game](ctx, l, DocSchedule, l.files.ScheduleFile)
	return list
}

// Meta returns the current metadata, or an empty Meta.
func (l *Loader) Meta(ctx context.Context) domain.Meta {
	meta, _ := loadJSON[domain.Meta](ctx, l, DocMeta, l.files.MetaFile)
	return meta
}

// Rankings returns the ranking snapshots, or nil.
func (l *Loader) Rankings(ctx context.Context) []domain.RankingSnapshot {
	snaps, _ := loadJSON[[]domain.RankingSnapshot](ctx, l, DocRankings, l.files.RankingsFile)
	return snaps
}

// Lines returns the odds lines, or nil.
func (l *Loader) Lines(ctx context.Context) []domain.OddsLine {
	lines, _ := loadJSON[[]domain.OddsLine](ctx, l, DocLines, l.files.LinesFile)
	return lines
}

// Places returns the points of interest, or nil.
func (l *Loader) Places(ctx context.Context) []domain.Place {
	places, _ := loadJSON[[]domain.Place](ctx, l, DocPlaces, l.files.PlacesFile)
	return places
}

// HasCalendar probes for the next-game ICS file.
func (l *Loader) HasCalendar(ctx context.Context) bool {
	if l == nil || l.source == nil || l.files.CalendarFile == "" {
		return false
	}
	start := time.Now()
	ok := l.source.Exists(ctx, l.files.CalendarFile)
	var err error
	if !ok {
		err = fmt.Errorf("%s not found", l.files.CalendarFile)
	}
	l.metrics.RecordFetch(DocCalendar, time.Since(start), err)
	logging.Debug(logging.FromContext(ctx, l.logger), "calendar probe",
		logging.FieldDocument, DocCalendar,
		logging.FieldState, ok,
	)
	return ok
}

// CalendarLink is the public href of the ICS file with a cache-buster.
func (l *Loader) CalendarLink() string {
	base := strings.TrimSuffix(l.files.PublicPath, "/")
	name := strings.TrimPrefix(l.files.CalendarFile, "/")
	link := name
	if base != "" {
		link = base + "/" + name
	}
	q := url.Values{}
	q.Set("t", strconv.FormatInt(l.now().UnixMilli(), 10))
	return link + "?" + q.Encode()
}

// loadJSON fetches and decodes one document. The zero T is returned on any
// failure; the error is only for tests.
func loadJSON[T any](ctx context.Context, l *Loader, doc, name string) (T, error) {
	var out T
	if l == nil || l.source == nil {
		return out, fmt.Errorf("load %s: no data source", doc)
	}
	logger := logging.FromContext(ctx, l.logger)

	start := time.Now()
	body, err := l.source.Fetch(ctx, name)
	if err == nil {
		err = json.Unmarshal(body, &out)
		if err != nil {
			var zero T
			out = zero
			err = fmt.Errorf("decode %s: %w", name, err)
		}
	}
	elapsed := time.Since(start)
	l.metrics.RecordFetch(doc, elapsed, err)

	if err != nil {
		logging.Warn(logger, "data fetch failed; using empty default", err,
			logging.FieldDocument, doc,
			logging.FieldPath, name,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return out, err
	}
	logging.Debug(logger, "data fetched",
		logging.FieldDocument, doc,
		logging.FieldPath, name,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return out, nil
}
