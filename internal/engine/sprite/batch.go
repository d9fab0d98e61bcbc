package sprite

import (
	"sync"
	"time"
)

// Batch is a cancellable, re-armable trailing-edge task.
//
// Every Schedule cancels the armed run and arms a new one a full window later.
// The run executes with guard held, and so must Schedule and Cancel: a timer
// that lost the race against Cancel or Schedule observes a stale generation
// under the guard and does nothing.
type Batch struct {
	guard  sync.Locker
	window time.Duration
	run    func()
	timer  *time.Timer
	gen    uint64
}

// NewBatch creates a Batch that calls run, with guard held, once the window
// elapses without a further Schedule.
func NewBatch(window time.Duration, guard sync.Locker, run func()) *Batch {
	return &Batch{
		guard:  guard,
		window: window,
		run:    run,
	}
}

// Schedule arms the batch, replacing any run that is already armed.
// The caller must hold the guard.
func (b *Batch) Schedule() {
	b.stop()
	gen := b.gen
	b.timer = time.AfterFunc(b.window, func() { b.fire(gen) })
}

// Cancel disarms the batch. The caller must hold the guard.
func (b *Batch) Cancel() {
	b.stop()
}

// Pending reports whether a run is armed. The caller must hold the guard.
func (b *Batch) Pending() bool {
	return b.timer != nil
}

func (b *Batch) stop() {
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Batch) fire(gen uint64) {
	b.guard.Lock()
	defer b.guard.Unlock()

	if gen != b.gen || b.timer == nil {
		return
	}
	b.timer = nil
	b.run()
}
