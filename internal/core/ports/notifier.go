package ports

import (
	"context"

	"go.trai.ch/sprite/internal/core/domain"
)

// ReloadNotifier tells downstream consumers that a merged sprite changed on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type ReloadNotifier interface {
	// Notify runs the reload hook of the target whose output changed.
	Notify(ctx context.Context, target domain.Target) error
}
