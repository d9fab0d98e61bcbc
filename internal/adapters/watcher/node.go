package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/adapters/fs"
	"go.trai.ch/sprite/internal/adapters/logger"
	"go.trai.ch/sprite/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: false,
		DependsOn: []graft.ID{fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(hasher, log, DefaultDebounceWindow)
		},
	})
}
