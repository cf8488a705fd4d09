package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"gameday-hub/internal/config"
	"gameday-hub/internal/datasource"
	"gameday-hub/internal/metrics"
	"gameday-hub/internal/page"
	"gameday-hub/internal/teststubs"
	"gameday-hub/internal/testutil"
	"gameday-hub/internal/weekstate"
)

func fixtureSource(cfg config.Config) *teststubs.StubSource {
	return &teststubs.StubSource{Docs: map[string]string{
		cfg.Data.ScheduleFile: testutil.ScheduleJSON,
		cfg.Data.MetaFile:     testutil.MetaJSON,
		cfg.Data.RankingsFile: testutil.RankingsJSON,
		cfg.Data.LinesFile:    testutil.LinesJSON,
		cfg.Data.PlacesFile:   testutil.PlacesJSON,
		cfg.Data.CalendarFile: "BEGIN:VCALENDAR",
	}}
}

func newTestApp(t *testing.T, cfg config.Config, now time.Time, out *teststubs.RecordingOutput) (*App, *metrics.Recorder) {
	t.Helper()
	return newClockedApp(t, cfg, testutil.NowAt(now), out)
}

func newClockedApp(t *testing.T, cfg config.Config, now func() time.Time, out *teststubs.RecordingOutput) (*App, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	loader := datasource.NewLoader(fixtureSource(cfg), cfg.Data,
		datasource.WithMetrics(rec),
		datasource.WithClock(now),
	)
	a := New(cfg, out, loader, WithMetrics(rec), WithClock(now))
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a, rec
}

func TestInitRendersEveryRoutine(t *testing.T) {
	cfg := config.Default()
	// Wednesday of a bye week.
	now := testutil.MustParseRFC3339("2025-09-03T16:00:00Z")
	out := teststubs.NewRecordingOutput()
	a, rec := newTestApp(t, cfg, now, out)

	if err := a.Init(context.Background()); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if a.Outcome().Kind != weekstate.ByeWeek {
		t.Fatalf("expected bye week, got %s", a.Outcome().Kind)
	}
	if got := out.Text(page.ScoreMsg); !strings.HasPrefix(got, "Bye week") {
		t.Fatalf("unexpected score message %q", got)
	}
	if got := out.Text(page.NextLine); got != "Week 3: Tennessee vs Georgia — Sep 13" {
		t.Fatalf("unexpected next line %q", got)
	}
	if got := out.Attr(page.DownloadICS, "href"); got != "data/current/next.ics?t=1756915200000" {
		t.Fatalf("unexpected ICS href %q", got)
	}
	if !strings.Contains(out.HTMLs[page.SchedRows], "Syracuse") {
		t.Fatalf("expected schedule rows, got %q", out.HTMLs[page.SchedRows])
	}
	if !strings.Contains(out.HTMLs[page.PlacesList], "Market Square") {
		t.Fatalf("expected places, got %q", out.HTMLs[page.PlacesList])
	}
	if !out.Hidden[page.GuideExtra] || out.Attr(page.SiteHeader, "data-open") != "false" {
		t.Fatalf("expected guide and nav initialized")
	}
	if len(out.Wraps) != 2 {
		t.Fatalf("expected calendar actions grouped, got %v", out.Wraps)
	}
	if out.Text(page.CDDays) != "10" {
		t.Fatalf("expected countdown days 10, got %q", out.Text(page.CDDays))
	}

	for _, routine := range []string{RoutineSchedule, RoutineTopStrip, RoutinePlaces} {
		if rec.Renders(routine) != 1 {
			t.Fatalf("expected one %s render, got %d", routine, rec.Renders(routine))
		}
	}
	if a.IsGameday() {
		t.Fatalf("wednesday should not be a gameday")
	}
}

func TestInitSkipsMissingSections(t *testing.T) {
	cfg := config.Default()
	now := testutil.MustParseRFC3339("2025-09-03T16:00:00Z")
	out := teststubs.NewRecordingOutput(page.SchedTable, page.PlacesList, page.Countdown)
	a, rec := newTestApp(t, cfg, now, out)

	if err := a.Init(context.Background()); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if rec.FetchCalls(datasource.DocPlaces) != 0 {
		t.Fatalf("expected places not fetched without a list")
	}
	if _, ok := out.Texts[page.CDDays]; ok {
		t.Fatalf("expected no countdown writes without a countdown")
	}
	if out.Text(page.RankLine) != "AP: 15 • Coaches: 14" {
		t.Fatalf("unexpected rank line %q", out.Text(page.RankLine))
	}
}

func TestGamedayRefreshRunsTopStrip(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.RefreshInterval = 5 * time.Millisecond
	// Saturday afternoon in New York.
	now := testutil.MustParseRFC3339("2025-09-13T18:00:00Z")
	out := teststubs.NewRecordingOutput()
	a, rec := newTestApp(t, cfg, now, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := a.Init(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !a.IsGameday() {
		t.Fatalf("expected saturday to be a gameday")
	}

	deadline := time.After(time.Second)
	for rec.PollerCycles(refreshTask) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for refresh cycles, got %d", rec.PollerCycles(refreshTask))
		case <-time.After(5 * time.Millisecond):
		}
	}
	if rec.Renders(RoutineTopStrip) < 3 {
		t.Fatalf("expected top strip re-rendered, got %d", rec.Renders(RoutineTopStrip))
	}

	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestRefreshSkippedOffGameday(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.RefreshInterval = time.Millisecond
	now := testutil.MustParseRFC3339("2025-09-03T16:00:00Z")
	a, rec := newTestApp(t, cfg, now, teststubs.NewRecordingOutput())

	if err := a.Init(context.Background()); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if got := rec.PollerCycles(refreshTask); got != 0 {
		t.Fatalf("expected no refresh cycles, got %d", got)
	}
}

func TestLiveRefreshStartsWhenGamedayArrives(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.Live = true
	cfg.Timing.RefreshInterval = 5 * time.Millisecond
	// Friday afternoon in New York.
	clock := testutil.NewClock(testutil.MustParseRFC3339("2025-09-12T18:00:00Z"))
	a, rec := newClockedApp(t, cfg, clock.Now, teststubs.NewRecordingOutput())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := a.Init(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	deadline := time.After(time.Second)
	for rec.PollerCycles(refreshTask) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for refresh cycles")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := rec.Renders(RoutineTopStrip); got != 1 {
		t.Fatalf("expected no refresh renders on friday, got %d", got)
	}

	clock.Set(testutil.MustParseRFC3339("2025-09-13T18:00:00Z"))
	for rec.Renders(RoutineTopStrip) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for saturday refresh, renders=%d", rec.Renders(RoutineTopStrip))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestLiveRefreshStopsAfterGameday(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.Live = true
	cfg.Timing.RefreshInterval = 5 * time.Millisecond
	clock := testutil.NewClock(testutil.MustParseRFC3339("2025-09-13T18:00:00Z"))
	a, rec := newClockedApp(t, cfg, clock.Now, teststubs.NewRecordingOutput())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := a.Init(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	deadline := time.After(time.Second)
	for rec.Renders(RoutineTopStrip) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for saturday refresh")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Sunday afternoon: cycles keep ticking without re-rendering.
	clock.Set(testutil.MustParseRFC3339("2025-09-14T18:00:00Z"))
	time.Sleep(15 * time.Millisecond)
	settled := rec.Renders(RoutineTopStrip)
	cycles := rec.PollerCycles(refreshTask)
	for rec.PollerCycles(refreshTask) < cycles+3 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for sunday cycles")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := rec.Renders(RoutineTopStrip); got != settled {
		t.Fatalf("expected no sunday renders, got %d after %d", got, settled)
	}
}

func TestToggleHooksFlipSections(t *testing.T) {
	cfg := config.Default()
	out := teststubs.NewRecordingOutput()
	a, _ := newTestApp(t, cfg, testutil.MustParseRFC3339("2025-09-03T16:00:00Z"), out)
	if err := a.Init(context.Background()); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !out.Classes[page.SchedTable]["table-collapsed"] {
		t.Fatalf("expected schedule collapsed after init")
	}

	if a.ToggleSchedule() {
		t.Fatalf("expected schedule expanded after first toggle")
	}
	if out.Classes[page.SchedTable]["table-collapsed"] || out.Attr(page.SchedMore, "aria-expanded") != "true" {
		t.Fatalf("expected expanded table state written")
	}
	if !a.ToggleSchedule() || !out.Classes[page.SchedTable]["table-collapsed"] {
		t.Fatalf("expected schedule collapsed again")
	}

	if !a.ToggleGuide() {
		t.Fatalf("expected guide open after first toggle")
	}
	if out.Hidden[page.GuideExtra] || out.Attr(page.GuideMore, "aria-expanded") != "true" {
		t.Fatalf("expected guide shown")
	}
	if a.ToggleGuide() || !out.Hidden[page.GuideExtra] {
		t.Fatalf("expected guide closed again")
	}
}

func TestToggleHooksSkipMissingSlots(t *testing.T) {
	cfg := config.Default()
	out := teststubs.NewRecordingOutput(page.SchedTable, page.GuideExtra)
	a, _ := newTestApp(t, cfg, testutil.MustParseRFC3339("2025-09-03T16:00:00Z"), out)

	if !a.ToggleSchedule() {
		t.Fatalf("expected schedule state unchanged without a table")
	}
	a.ToggleGuide()
	if _, ok := out.Hidden[page.GuideExtra]; ok {
		t.Fatalf("expected no guide writes without the section")
	}
}

func TestGamedayUsesDisplayZone(t *testing.T) {
	cfg := config.Default()
	// 02:00 UTC Sunday is still Saturday evening in New York.
	now := testutil.MustParseRFC3339("2025-09-14T02:00:00Z")
	a, _ := newTestApp(t, cfg, now, teststubs.NewRecordingOutput())
	if !a.IsGameday() {
		t.Fatalf("expected saturday in the display zone")
	}

	cfg.Timing.Gamedays = []time.Weekday{time.Sunday}
	a, _ = newTestApp(t, cfg, now, teststubs.NewRecordingOutput())
	if a.IsGameday() {
		t.Fatalf("expected sunday-only config to skip saturday evening")
	}
}

func TestInitWithCancelledContext(t *testing.T) {
	cfg := config.Default()
	a, _ := newTestApp(t, cfg, time.Now(), teststubs.NewRecordingOutput())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Init(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
