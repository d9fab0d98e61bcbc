package sprite

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"go.trai.ch/sprite/internal/core/domain"
)

// Manager fans change events out to the caches of every target and commits
// dirty caches once the batch window has passed without further events.
//
// Route, the batch commit, EmitAll, Flush and Destroy are serialized: each
// runs to completion before the next one starts.
type Manager struct {
	mu        sync.Mutex
	caches    []*Cache
	dirty     map[*Cache]struct{}
	batch     *Batch
	deps      Deps
	window    time.Duration
	onEmit    func(domain.Target)
	destroyed bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithBatchWindow sets the trailing-edge delay before dirty caches are committed.
// Non-positive windows keep the default.
func WithBatchWindow(window time.Duration) Option {
	return func(m *Manager) {
		if window > 0 {
			m.window = window
		}
	}
}

// WithEmitHook registers fn to be called after a batch commit wrote a target.
// fn runs while the manager is locked and must not call back into it.
func WithEmitHook(fn func(domain.Target)) Option {
	return func(m *Manager) {
		m.onEmit = fn
	}
}

// NewManager creates one cache per target. Call Initialize to scan sources.
func NewManager(targets []domain.Target, deps Deps, opts ...Option) *Manager {
	m := &Manager{
		dirty:  make(map[*Cache]struct{}),
		deps:   deps,
		window: domain.DefaultBatchWindow,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.caches = make([]*Cache, len(targets))
	for i, target := range targets {
		m.caches[i] = NewCache(target, deps)
	}
	m.batch = NewBatch(m.window, &m.mu, func() { m.commit(context.Background()) })

	return m
}

// Initialize scans the source roots of every target.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.caches {
		c.Initialize()
	}
}

// Route applies one change event to every cache with a root containing path,
// marks those caches dirty and re-arms the batch. Paths that are not source
// documents are ignored, except removals, which may name a directory.
func (m *Manager) Route(ctx context.Context, kind domain.ChangeKind, p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed {
		return
	}

	key := domain.NormalizePath(p)
	if kind != domain.ChangeRemoved && path.Ext(key) != domain.SVGExtension {
		return
	}

	_, span := m.deps.tracer().Start(ctx, "sprite.route")
	defer span.End()
	span.SetAttribute("kind", kind.String())
	span.SetAttribute("path", key)

	touched := 0
	for _, c := range m.caches {
		roots := c.AssignedRoots(key)
		if len(roots) == 0 {
			if kind != domain.ChangeRemoved || !c.Holds(key) {
				continue
			}
			// A directory above the roots was removed.
			roots = c.Target().Input
		}

		// Removals that drop nothing leave the output as is.
		changed := kind != domain.ChangeRemoved
		for _, root := range roots {
			switch kind {
			case domain.ChangeAdded:
				c.Add(root, key)
			case domain.ChangeModified:
				c.Update(root, key)
			case domain.ChangeRemoved:
				if c.Remove(root, key) {
					changed = true
				}
			}
		}
		if !changed {
			continue
		}

		m.dirty[c] = struct{}{}
		touched++
	}
	span.SetAttribute("caches", touched)

	if touched > 0 {
		m.batch.Schedule()
	}
}

// EmitAll writes every target regardless of pending changes and returns the
// joined emission errors.
func (m *Manager) EmitAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs error
	for _, c := range m.caches {
		errs = errors.Join(errs, c.Emit(ctx))
	}
	return errs
}

// Flush commits pending changes immediately instead of waiting for the batch.
func (m *Manager) Flush(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batch.Cancel()
	m.commit(ctx)
}

// Pending reports whether a batch commit is armed.
func (m *Manager) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.batch.Pending()
}

// IsOutputPath reports whether path is an artifact written by one of the
// targets, either a merged sprite or its declaration.
func (m *Manager) IsOutputPath(p string) bool {
	key := domain.NormalizePath(p)
	for _, c := range m.caches {
		t := c.Target()
		if t.Output == key {
			return true
		}
		if t.Declaration != nil && t.Declaration.Path == key {
			return true
		}
	}
	return false
}

// Targets returns the targets in configuration order.
func (m *Manager) Targets() []domain.Target {
	targets := make([]domain.Target, len(m.caches))
	for i, c := range m.caches {
		targets[i] = c.Target()
	}
	return targets
}

// Destroy cancels a pending commit without writing it, drops every cache and
// makes later Route calls no-ops.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.destroyed = true
	m.batch.Cancel()
	clear(m.dirty)
	for _, c := range m.caches {
		c.Destroy()
	}
}

// commit emits every dirty cache in target order. The caller holds m.mu.
func (m *Manager) commit(ctx context.Context) {
	if len(m.dirty) == 0 {
		return
	}

	for _, c := range m.caches {
		if _, ok := m.dirty[c]; !ok {
			continue
		}
		if err := c.Emit(ctx); err != nil {
			m.deps.Logger.Error(err)
			continue
		}
		if m.onEmit != nil {
			m.onEmit(c.Target())
		}
	}
	clear(m.dirty)
}
