package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"gameday-hub/internal/page"
)

// StubSource is a test double for datasource.Source.
type StubSource struct {
	Docs   map[string]string
	Err    error
	Calls  atomic.Int32
	Probes atomic.Int32
	Notify chan struct{}
}

// Fetch returns the configured document and error while tracking calls.
func (s *StubSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	body, ok := s.Docs[name]
	if !ok {
		return nil, errors.New("document not found")
	}
	return []byte(body), nil
}

// Exists reports whether name is configured.
func (s *StubSource) Exists(ctx context.Context, name string) bool {
	_ = ctx
	s.Probes.Add(1)
	_, ok := s.Docs[name]
	return ok && s.Err == nil
}

// RecordingOutput is a test double for render.Output that keeps the last
// write per slot.
type RecordingOutput struct {
	mu      sync.Mutex
	Missing map[page.Slot]bool
	Texts   map[page.Slot]string
	HTMLs   map[page.Slot]string
	Attrs   map[page.Slot]map[string]string
	Hidden  map[page.Slot]bool
	Classes map[page.Slot]map[string]bool
	Wraps   []string
	Writes  int
}

// NewRecordingOutput reports every slot as present except missing.
func NewRecordingOutput(missing ...page.Slot) *RecordingOutput {
	o := &RecordingOutput{
		Missing: map[page.Slot]bool{},
		Texts:   map[page.Slot]string{},
		HTMLs:   map[page.Slot]string{},
		Attrs:   map[page.Slot]map[string]string{},
		Hidden:  map[page.Slot]bool{},
		Classes: map[page.Slot]map[string]bool{},
	}
	for _, s := range missing {
		o.Missing[s] = true
	}
	return o
}

func (o *RecordingOutput) Has(slot page.Slot) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return !o.Missing[slot]
}

func (o *RecordingOutput) SetText(slot page.Slot, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	o.Texts[slot] = text
}

func (o *RecordingOutput) SetHTML(slot page.Slot, markup string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	o.HTMLs[slot] = markup
}

func (o *RecordingOutput) SetAttr(slot page.Slot, name, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	if o.Attrs[slot] == nil {
		o.Attrs[slot] = map[string]string{}
	}
	o.Attrs[slot][name] = value
}

func (o *RecordingOutput) SetHidden(slot page.Slot, hidden bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	o.Hidden[slot] = hidden
}

func (o *RecordingOutput) SetClass(slot page.Slot, class string, on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	if o.Classes[slot] == nil {
		o.Classes[slot] = map[string]bool{}
	}
	o.Classes[slot][class] = on
}

func (o *RecordingOutput) WrapTogether(scope page.Slot, class string, first, second page.Slot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Writes++
	o.Wraps = append(o.Wraps, string(scope)+":"+class)
}

// Text returns the last text written to slot.
func (o *RecordingOutput) Text(slot page.Slot) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.Texts[slot]
}

// Attr returns the last value written to an attribute.
func (o *RecordingOutput) Attr(slot page.Slot, name string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.Attrs[slot][name]
}

// StubCountdown is a test double for render.Countdown.
type StubCountdown struct {
	mu        sync.Mutex
	Target    time.Time
	Active    bool
	Retargets int
	Disables  int
}

func (c *StubCountdown) Retarget(target time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Target = target
	c.Active = true
	c.Retargets++
}

func (c *StubCountdown) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Target = time.Time{}
	c.Active = false
	c.Disables++
}

// State returns the current target and whether it is active.
func (c *StubCountdown) State() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Target, c.Active
}
