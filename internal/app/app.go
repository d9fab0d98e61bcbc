// Package app implements the application layer for sprite.
package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/sprite/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/core/ports"
	"go.trai.ch/sprite/internal/engine/sprite"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	deps         sprite.Deps
	notifier     ports.ReloadNotifier
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	deps sprite.Deps,
	notifier ports.ReloadNotifier,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		deps:         deps,
		notifier:     notifier,
		watcher:      watcher,
	}
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}

// EnableTracing logs every finished span. The returned function flushes pending spans.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.InstallLogProvider(a.logger)
}

// Options configures Build and Watch.
type Options struct {
	// ConfigPath is the config file to load. Empty searches the working directory.
	ConfigPath string
}

// Build scans every target once, writes all outputs and exits.
func (a *App) Build(ctx context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	m := sprite.NewManager(cfg.Targets, a.deps)
	defer m.Destroy()

	m.Initialize()
	if err := m.EmitAll(ctx); err != nil {
		a.logErrors(err)
		return domain.ErrBuildFailed
	}
	return nil
}

// Watch builds every target, then keeps the outputs in sync with their source
// roots until ctx is cancelled. Targets written by a batch commit have their
// reload command run.
func (a *App) Watch(ctx context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	reloads := newReloadQueue()
	m := sprite.NewManager(cfg.Targets, a.deps,
		sprite.WithBatchWindow(cfg.BatchWindow),
		sprite.WithEmitHook(reloads.Push),
	)
	// Runs after the watcher stopped, dropping a pending commit.
	defer m.Destroy()

	m.Initialize()
	if err := m.EmitAll(ctx); err != nil {
		// Broken outputs are rewritten on the next change.
		a.logErrors(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	roots := sourceRoots(cfg.Targets)
	if err := a.watcher.Start(ctx, roots); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info(fmt.Sprintf("watching %d source roots for %d targets", len(roots), len(cfg.Targets)))

	g.Go(func() error {
		reloads.Run(ctx, a.notify)
		return nil
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if m.IsOutputPath(event.Path) {
				continue
			}
			m.Route(ctx, event.Kind, event.Path)
		}
		return nil
	})

	return g.Wait()
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// logErrors logs each error of a joined error separately.
func (a *App) logErrors(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			a.logErrors(e)
		}
		return
	}
	a.logger.Error(err)
}

func (a *App) notify(ctx context.Context, target domain.Target) {
	if err := a.notifier.Notify(ctx, target); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// sourceRoots returns the distinct root paths of all targets, sorted.
func sourceRoots(targets []domain.Target) []string {
	var roots []string
	for _, t := range targets {
		for _, root := range t.Input {
			roots = append(roots, root.Path)
		}
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}
