package ports

import (
	"context"
	"iter"

	"go.trai.ch/sprite/internal/core/domain"
)

// Watcher defines the interface for watching source roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given paths recursively.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of coalesced change events.
	// The iterator ends when the watcher stops.
	Events() iter.Seq[domain.ChangeEvent]
}
