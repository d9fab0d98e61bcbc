// Package watcher implements recursive file system watching of source roots.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"
	"unique"

	"go.trai.ch/sprite/internal/core/domain"
)

// DefaultDebounceWindow is the default time window for coalescing bursts of
// events for the same path.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into batches of one event per
// path. Kinds reported for the same path within a window are merged.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]domain.ChangeKind
	timer    *time.Timer
	window   time.Duration
	callback func(events []domain.ChangeEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []domain.ChangeEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]domain.ChangeKind),
		window:   window,
		callback: callback,
	}
}

// Add records a change for path and restarts the window.
func (d *Debouncer) Add(path string, kind domain.ChangeKind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handle := unique.Make(path)
	if prev, ok := d.pending[handle]; ok {
		kind = prev.Merge(kind)
	}
	d.pending[handle] = kind

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	events := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Flush immediately delivers all pending events and blocks until the
// callback returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	events := d.drain()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Stop cancels the window and discards pending events.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drain empties the pending set, returning its events ordered by path.
// The caller holds d.mu.
func (d *Debouncer) drain() []domain.ChangeEvent {
	events := make([]domain.ChangeEvent, 0, len(d.pending))
	for handle, kind := range d.pending {
		events = append(events, domain.ChangeEvent{Kind: kind, Path: handle.Value()})
	}
	clear(d.pending)

	slices.SortFunc(events, func(a, b domain.ChangeEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return events
}
