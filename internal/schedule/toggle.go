package schedule

import "sync"

// Toggle is the collapsed/expanded state of the schedule table. Tables start
// collapsed.
type Toggle struct {
	mu       sync.Mutex
	expanded bool
}

// Collapsed reports whether only the first VisibleRows rows are shown.
func (t *Toggle) Collapsed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.expanded
}

// Flip switches state and returns whether the table is now collapsed.
func (t *Toggle) Flip() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expanded = !t.expanded
	return !t.expanded
}
