// Package app runs the page initialization sequence and the recurring
// refresh tasks.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gameday-hub/internal/config"
	"gameday-hub/internal/countdown"
	"gameday-hub/internal/domain"
	"gameday-hub/internal/domain/games"
	"gameday-hub/internal/logging"
	"gameday-hub/internal/metrics"
	"gameday-hub/internal/page"
	"gameday-hub/internal/poller"
	"gameday-hub/internal/render"
	"gameday-hub/internal/schedule"
	"gameday-hub/internal/team"
	"gameday-hub/internal/timeutil"
	"gameday-hub/internal/weekstate"
)

// Render routine names used in logs and metrics.
const (
	RoutineSchedule = "schedule"
	RoutineTopStrip = "top_strip"
	RoutinePlaces   = "places"

	refreshTask = "gameday_refresh"
)

// Loader is the best-effort data boundary the routines read from.
type Loader interface {
	Schedule(ctx context.Context) []games.Game
	Meta(ctx context.Context) domain.Meta
	Rankings(ctx context.Context) []domain.RankingSnapshot
	Lines(ctx context.Context) []domain.OddsLine
	Places(ctx context.Context) []domain.Place
	HasCalendar(ctx context.Context) bool
	CalendarLink() string
}

// Option customizes an App.
type Option func(*App)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(a *App) { a.metrics = recorder }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// App owns the render routines, the countdown and the gameday refresh.
type App struct {
	cfg     config.Config
	out     render.Output
	loader  Loader
	env     render.Env
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	timer   *countdown.Timer
	refresh *poller.Poller

	sched schedule.Toggle

	mu        sync.Mutex
	outcome   weekstate.Outcome
	guideOpen bool
}

// New wires an App writing to out and reading through loader.
func New(cfg config.Config, out render.Output, loader Loader, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		out:    out,
		loader: loader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	loc := timeutil.ResolveLocation(cfg.Team.Timezone)
	a.env = render.Env{
		Tracker:   team.NewTracker(cfg.Team.Name, cfg.Team.KickoffHourUTC),
		Formatter: timeutil.NewFormatter(loc, cfg.Team.TimezoneLabel),
	}

	var display countdown.Display
	if out.Has(page.Countdown) {
		display = render.CountdownDisplay(out)
	}
	a.timer = countdown.NewTimer(display,
		countdown.WithClock(a.now),
		countdown.WithInterval(cfg.Timing.CountdownInterval),
		countdown.WithLogger(a.logger),
		countdown.WithMetrics(a.metrics),
	)
	a.refresh = poller.New(refreshTask, func(ctx context.Context) error {
		if !a.IsGameday() {
			return nil
		}
		a.runRoutine(ctx, RoutineTopStrip, a.topStrip)
		return nil
	}, cfg.Timing.RefreshInterval,
		poller.WithImmediate(false),
		poller.WithLogger(a.logger),
		poller.WithMetrics(a.metrics),
	)
	return a
}

// Init prepares static widgets, starts the countdown and runs the schedule,
// top strip and places routines concurrently. In live mode, or when started
// on a gameday, it schedules the top strip refresh, which only re-renders on
// gameday weekdays.
func (a *App) Init(ctx context.Context) error {
	start := a.now()
	render.Nav(a.out)
	a.timer.Start(ctx)
	render.Guide(a.out)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.runRoutine(gctx, RoutineSchedule, a.schedule)
		return nil
	})
	g.Go(func() error {
		a.runRoutine(gctx, RoutineTopStrip, a.topStrip)
		return nil
	})
	g.Go(func() error {
		a.runRoutine(gctx, RoutinePlaces, a.places)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// A live process outlives the day it started on, so each refresh cycle
	// checks the weekday itself.
	if a.cfg.Timing.Live || a.IsGameday() {
		logging.Info(a.logger, "gameday refresh scheduled",
			logging.FieldTask, refreshTask,
			logging.FieldDurationMS, a.cfg.Timing.RefreshInterval.Milliseconds(),
		)
		a.refresh.Start(ctx)
	}

	render.GroupCalendarActions(a.out)
	logging.Info(a.logger, "page initialized",
		logging.FieldState, a.Outcome().Kind.String(),
		logging.FieldDurationMS, a.now().Sub(start).Milliseconds(),
	)
	return ctx.Err()
}

// IsGameday reports whether today, in the display zone, is a refresh day.
func (a *App) IsGameday() bool {
	return a.cfg.Timing.IsGameday(a.now().In(a.env.Formatter.Location()))
}

// Outcome returns the week state from the latest top strip pass.
func (a *App) Outcome() weekstate.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outcome
}

// Timer exposes the countdown.
func (a *App) Timer() *countdown.Timer {
	return a.timer
}

// ToggleSchedule expands or collapses the schedule table and reports whether
// it is now collapsed. It is the hook for whatever drives the "See more"
// button; the static page written by the runner leaves clicks to the site's
// own script.
func (a *App) ToggleSchedule() bool {
	if !a.out.Has(page.SchedTable) {
		return a.sched.Collapsed()
	}
	render.ToggleSchedule(a.out, &a.sched)
	return a.sched.Collapsed()
}

// ToggleGuide opens or closes the guide accordion and reports whether it is
// now open.
func (a *App) ToggleGuide() bool {
	a.mu.Lock()
	a.guideOpen = !a.guideOpen
	open := a.guideOpen
	a.mu.Unlock()

	if a.out.Has(page.GuideExtra) && a.out.Has(page.GuideMore) {
		render.GuideOpen(a.out, open)
	}
	return open
}

// Close stops the refresh task and the countdown.
func (a *App) Close(ctx context.Context) error {
	refreshErr := a.refresh.Stop(ctx)
	timerErr := a.timer.Stop(ctx)
	if refreshErr != nil {
		return refreshErr
	}
	return timerErr
}

func (a *App) runRoutine(ctx context.Context, name string, fn func(ctx context.Context)) {
	start := time.Now()
	logger := a.logger
	if logger != nil {
		logger = logger.With(logging.FieldRoutine, name)
	}
	fn(logging.WithContext(ctx, logger))
	elapsed := time.Since(start)
	a.metrics.RecordRender(name, elapsed)
	logging.Debug(logger, "render routine complete", logging.FieldDurationMS, elapsed.Milliseconds())
}

func (a *App) schedule(ctx context.Context) {
	if !a.out.Has(page.SchedTable) {
		return
	}
	meta := a.loader.Meta(ctx)
	list := a.loader.Schedule(ctx)
	render.Schedule(a.out, a.env, meta, list)
}

func (a *App) topStrip(ctx context.Context) {
	data := render.TopStripData{
		Meta:     a.loader.Meta(ctx),
		Games:    a.loader.Schedule(ctx),
		Rankings: a.loader.Rankings(ctx),
		Lines:    a.loader.Lines(ctx),
		ICS: func() (string, bool) {
			if !a.loader.HasCalendar(ctx) {
				return "", false
			}
			return a.loader.CalendarLink(), true
		},
	}
	outcome := render.TopStrip(a.out, a.env, a.timer, data, a.now())

	a.mu.Lock()
	changed := a.outcome.Kind != outcome.Kind
	a.outcome = outcome
	a.mu.Unlock()
	if changed {
		logging.Info(logging.FromContext(ctx, a.logger), "week state", logging.FieldState, outcome.Kind.String())
	}
}

func (a *App) places(ctx context.Context) {
	if !a.out.Has(page.PlacesList) {
		return
	}
	render.Places(a.out, a.loader.Places(ctx))
}
