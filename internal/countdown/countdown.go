// Package countdown renders the time left until kickoff as day, hour,
// minute and second fields.
package countdown

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gameday-hub/internal/logging"
	"gameday-hub/internal/metrics"
	"gameday-hub/internal/poller"
)

const (
	// TaskName identifies the tick task in logs and metrics.
	TaskName = "countdown"

	defaultInterval = time.Second
)

// Unit names one countdown field.
type Unit string

const (
	Days    Unit = "days"
	Hours   Unit = "hrs"
	Minutes Unit = "min"
	Seconds Unit = "sec"
)

// Units lists the fields in display order.
var Units = []Unit{Days, Hours, Minutes, Seconds}

// Remaining is a non-negative time span split into display units.
type Remaining struct {
	Days, Hours, Minutes, Seconds int
}

// Until splits target minus now into units, truncated to whole seconds and
// clamped at zero.
func Until(target, now time.Time) Remaining {
	diff := int64(target.Sub(now) / time.Second)
	if diff < 0 {
		diff = 0
	}
	r := Remaining{Days: int(diff / 86400)}
	diff %= 86400
	r.Hours = int(diff / 3600)
	diff %= 3600
	r.Minutes = int(diff / 60)
	r.Seconds = int(diff % 60)
	return r
}

// Value returns the field for u.
func (r Remaining) Value(u Unit) int {
	switch u {
	case Days:
		return r.Days
	case Hours:
		return r.Hours
	case Minutes:
		return r.Minutes
	default:
		return r.Seconds
	}
}

// State holds the last value written per unit. -1 means never written.
type State map[Unit]int

// NewState returns a State that forces every unit to render.
func NewState() State {
	s := make(State, len(Units))
	s.Reset()
	return s
}

// Reset marks every unit as never written.
func (s State) Reset() {
	for _, u := range Units {
		s[u] = -1
	}
}

// Changed returns the units whose value differs from r and records r.
func (s State) Changed(r Remaining) []Unit {
	var changed []Unit
	for _, u := range Units {
		v := r.Value(u)
		if s[u] != v {
			s[u] = v
			changed = append(changed, u)
		}
	}
	return changed
}

// Display receives rendered unit text.
type Display interface {
	SetUnit(u Unit, text string)
}

// Option customizes a Timer.
type Option func(*Timer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithInterval overrides the tick cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Timer) { t.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(t *Timer) { t.metrics = recorder }
}

// Timer ticks toward a target instant, rewriting only the units that changed.
// The target can be replaced or cleared while the tick task keeps running.
type Timer struct {
	display  Display
	now      func() time.Time
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu     sync.Mutex
	target time.Time
	active bool
	state  State

	pollerMu sync.Mutex
	poller   *poller.Poller
}

// NewTimer builds a Timer writing to display. A nil display makes every
// operation a no-op.
func NewTimer(display Display, opts ...Option) *Timer {
	t := &Timer{
		display:  display,
		now:      time.Now,
		interval: defaultInterval,
		state:    NewState(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Retarget points the countdown at target and renders every unit at once.
func (t *Timer) Retarget(target time.Time) {
	if t == nil || t.display == nil {
		return
	}
	t.mu.Lock()
	t.target = target
	t.active = true
	t.state.Reset()
	t.mu.Unlock()
	logging.Debug(t.logger, "countdown retargeted", logging.FieldState, target.UTC().Format(time.RFC3339))
	t.Tick()
}

// Disable stops rendering until the next Retarget. The fields keep their
// last text.
func (t *Timer) Disable() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.active = false
	t.target = time.Time{}
	t.state.Reset()
	t.mu.Unlock()
}

// Active reports whether a target is set.
func (t *Timer) Active() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Target returns the current target, if any.
func (t *Timer) Target() (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target, t.active
}

// Tick renders the units that changed since the previous tick.
func (t *Timer) Tick() {
	if t == nil || t.display == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	r := Until(t.target, t.now())
	changed := t.state.Changed(r)

	names := make([]string, 0, len(changed))
	for _, u := range changed {
		t.display.SetUnit(u, fmt.Sprintf("%02d", r.Value(u)))
		names = append(names, string(u))
	}
	t.metrics.RecordCountdownRender(names...)
}

// Start launches the periodic tick. Calling it again is a no-op.
func (t *Timer) Start(ctx context.Context) {
	if t == nil || t.display == nil {
		return
	}
	t.pollerMu.Lock()
	if t.poller == nil {
		t.poller = poller.New(TaskName, func(context.Context) error {
			t.Tick()
			return nil
		}, t.interval,
			poller.WithImmediate(false),
			poller.WithQuietCycles(),
			poller.WithLogger(t.logger),
			poller.WithMetrics(t.metrics),
		)
	}
	p := t.poller
	t.pollerMu.Unlock()
	p.Start(ctx)
}

// Stop halts the periodic tick.
func (t *Timer) Stop(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.pollerMu.Lock()
	p := t.poller
	t.pollerMu.Unlock()
	if p == nil {
		return nil
	}
	return p.Stop(ctx)
}
