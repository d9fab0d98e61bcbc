package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/sprite/internal/core/domain"
	"go.trai.ch/sprite/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements recursive source root watching using fsnotify.
// Raw events are coalesced per path by a Debouncer, and writes that leave a
// source document unchanged are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	digests   *DigestCache
	logger    ports.Logger
	events    chan domain.ChangeEvent
	done      chan struct{}

	shutdownOnce sync.Once
	shutdownErr  error
	wg           sync.WaitGroup
}

// NewWatcher creates a new file system watcher that coalesces events within window.
func NewWatcher(hasher ports.ContentHasher, logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrWatcherStartFailed, err.Error())
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		digests:   NewDigestCache(hasher),
		logger:    logger,
		events:    make(chan domain.ChangeEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.deliver)
	return w, nil
}

// Start begins watching the given roots recursively.
// Roots that do not exist are skipped with a warning.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			w.logger.Warn(fmt.Sprintf("source root %s is not a directory, not watching it", root))
			continue
		}
		for path, d := range w.walk(root) {
			if !d.IsDir() {
				if isSource(path) {
					w.digests.Seed(path)
				}
				continue
			}
			if err := w.fsWatcher.Add(path); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrWatcherStartFailed, err.Error()), "path", path)
			}
		}
	}

	w.wg.Add(1)
	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	err := w.shutdown()
	w.wg.Wait()
	return err
}

// Events returns an iterator of coalesced change events.
func (w *Watcher) Events() iter.Seq[domain.ChangeEvent] {
	return func(yield func(domain.ChangeEvent) bool) {
		for {
			select {
			case <-w.done:
				return
			case event := <-w.events:
				if !yield(event) {
					return
				}
			}
		}
	}
}

func (w *Watcher) shutdown() error {
	w.shutdownOnce.Do(func() {
		close(w.done)
		w.debouncer.Stop()
		w.shutdownErr = w.fsWatcher.Close()
	})
	return w.shutdownErr
}

// deliver hands a debounced batch to the consumer. It gives up once the
// watcher has been stopped.
func (w *Watcher) deliver(events []domain.ChangeEvent) {
	for _, event := range events {
		select {
		case w.events <- event:
		case <-w.done:
			return
		}
	}
}

// walk walks the tree below root and yields every entry outside skipped directories.
func (w *Watcher) walk(root string) iter.Seq2[string, fs.DirEntry] {
	return func(yield func(string, fs.DirEntry) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Keep walking past entries that vanished or cannot be read.
				return nil //nolint:nilerr // skipping problematic entries is intended
			}
			if d.IsDir() && path != root && domain.IsIgnoredDir(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path, d) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events into debounced change events.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			_ = w.shutdown()
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("file system watcher error: %v", err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name

	switch {
	case event.Has(fsnotify.Create):
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !domain.IsIgnoredDir(info.Name()) {
				w.addTree(path)
			}
			return
		}
		if isSource(path) {
			w.digests.Seed(path)
		}
		w.debouncer.Add(path, domain.ChangeAdded)

	case event.Has(fsnotify.Write):
		if isSource(path) && !w.digests.Changed(path) {
			return
		}
		w.debouncer.Add(path, domain.ChangeModified)

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.digests.Forget(path)
		w.debouncer.Add(path, domain.ChangeRemoved)
	}
}

// addTree watches a newly created directory. Source documents that landed in
// it before the watch was in place are reported as added.
func (w *Watcher) addTree(dir string) {
	for path, d := range w.walk(dir) {
		if d.IsDir() {
			if err := w.fsWatcher.Add(path); err != nil {
				w.logger.Warn(fmt.Sprintf("could not watch %s: %v", path, err))
			}
			continue
		}
		if isSource(path) {
			w.digests.Seed(path)
			w.debouncer.Add(path, domain.ChangeAdded)
		}
	}
}

func isSource(path string) bool {
	return filepath.Ext(path) == domain.SVGExtension
}
