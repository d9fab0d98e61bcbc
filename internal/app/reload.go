package app

import (
	"context"
	"sync"

	"go.trai.ch/sprite/internal/core/domain"
)

// reloadQueue hands targets written by a batch commit to a worker that runs
// their reload commands. Push never blocks, and a target already waiting is
// not queued twice.
type reloadQueue struct {
	mu      sync.Mutex
	pending []domain.Target
	signal  chan struct{}
}

func newReloadQueue() *reloadQueue {
	return &reloadQueue{signal: make(chan struct{}, 1)}
}

// Push queues target when it has a reload command.
func (q *reloadQueue) Push(target domain.Target) {
	if len(target.Reload) == 0 {
		return
	}

	q.mu.Lock()
	queued := false
	for _, t := range q.pending {
		if t.Output == target.Output {
			queued = true
			break
		}
	}
	if !queued {
		q.pending = append(q.pending, target)
	}
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Run calls notify for queued targets, in push order, until ctx is done.
func (q *reloadQueue) Run(ctx context.Context, notify func(context.Context, domain.Target)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.signal:
			for _, target := range q.drain() {
				if ctx.Err() != nil {
					return
				}
				notify(ctx, target)
			}
		}
	}
}

func (q *reloadQueue) drain() []domain.Target {
	q.mu.Lock()
	defer q.mu.Unlock()

	targets := q.pending
	q.pending = nil
	return targets
}
