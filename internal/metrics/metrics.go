package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight in-memory counters and mirrors them into
// OpenTelemetry instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu        sync.Mutex
	fetches   map[string]*fetchStats
	renders   map[string]int
	cycles    map[string]int
	unitDraws map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches:   make(map[string]*fetchStats),
		renders:   make(map[string]int),
		cycles:    make(map[string]int),
		unitDraws: make(map[string]int),
		otel:      otel,
	}
}

// RecordFetch counts a document fetch and stores the last observed latency.
func (r *Recorder) RecordFetch(document string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.fetches[document]
	if !ok {
		stats = &fetchStats{}
		r.fetches[document] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(document, duration, err)
	}
}

// RecordRender tracks a render routine pass.
func (r *Recorder) RecordRender(routine string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.renders[routine]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRender(routine, duration)
	}
}

// RecordPollerCycle tracks a cycle of the named periodic task.
func (r *Recorder) RecordPollerCycle(task string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cycles[task]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPoller(task, duration, err)
	}
}

// RecordCountdownRender counts countdown unit fields that were rewritten.
func (r *Recorder) RecordCountdownRender(units ...string) {
	if r == nil || len(units) == 0 {
		return
	}
	r.mu.Lock()
	for _, u := range units {
		r.unitDraws[u]++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCountdown(units)
	}
}

// Snapshot is a copy of the fetch stats for one document.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the document.
func (r *Recorder) Snapshot(document string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.fetches[document]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total fetches recorded for a document.
func (r *Recorder) FetchCalls(document string) int {
	return r.Snapshot(document).Calls
}

// FetchErrors returns the failed fetches recorded for a document.
func (r *Recorder) FetchErrors(document string) int {
	return r.Snapshot(document).Errors
}

// Renders returns how many passes a render routine has made.
func (r *Recorder) Renders(routine string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders[routine]
}

// PollerCycles returns how many cycles a periodic task has run.
func (r *Recorder) PollerCycles(task string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles[task]
}

// CountdownRenders returns how many times a countdown unit was rewritten.
func (r *Recorder) CountdownRenders(unit string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unitDraws[unit]
}
