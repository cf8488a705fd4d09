package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gameday-hub/internal/logging"
	"gameday-hub/internal/metrics"
)

const defaultInterval = 30 * time.Second

// Task is the unit of work run on every tick.
type Task func(ctx context.Context) error

// Option customizes a Poller.
type Option func(*Poller)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) { p.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(p *Poller) { p.metrics = recorder }
}

// WithImmediate controls whether the task runs once as soon as Start is called.
// It does by default.
func WithImmediate(immediate bool) Option {
	return func(p *Poller) { p.immediate = immediate }
}

// WithQuietCycles demotes per-cycle success logs to debug. Used for
// high-frequency tasks such as the countdown tick.
func WithQuietCycles() Option {
	return func(p *Poller) { p.quiet = true }
}

// Poller runs a named task on an interval until stopped.
type Poller struct {
	name      string
	task      Task
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	immediate bool
	quiet     bool
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	Cycles              int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(name string, task Task, interval time.Duration, opts ...Option) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	p := &Poller{
		name:      name,
		task:      task,
		interval:  interval,
		immediate: true,
		now:       time.Now,
		done:      make(chan struct{}),
		exited:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the task name used in logs and metrics.
func (p *Poller) Name() string {
	return p.name
}

// Start begins running the task until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	select {
	case <-p.done:
		close(p.exited)
		return
	default:
	}

	p.ticker = time.NewTicker(p.interval)

	go func() {
		defer close(p.exited)
		logging.Info(p.logger, "poller started",
			logging.FieldTask, p.name,
			logging.FieldDurationMS, p.interval.Milliseconds(),
		)
		if p.immediate {
			p.runOnce(ctx)
		}

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped", logging.FieldTask, p.name)
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped", logging.FieldTask, p.name)
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight cycle to finish, or for ctx
// to expire.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce runs the task a single time outside the loop.
func (p *Poller) RunOnce(ctx context.Context) {
	p.runOnce(ctx)
}

func (p *Poller) runOnce(ctx context.Context) {
	if p.task == nil {
		return
	}
	start := p.now()
	p.recordAttempt(start)
	err := p.task(ctx)
	elapsed := p.now().Sub(start)
	p.metrics.RecordPollerCycle(p.name, elapsed, err)
	if err != nil {
		logging.Error(p.logger, "poller task failed", err,
			logging.FieldTask, p.name,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	if p.quiet {
		logging.Debug(p.logger, "poller cycle complete", logging.FieldTask, p.name)
		return
	}
	logging.Info(p.logger, "poller cycle complete",
		logging.FieldTask, p.name,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Cycles++
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
