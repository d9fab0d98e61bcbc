package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/adapters/logger"
	"go.trai.ch/sprite/internal/core/ports"
)

// NodeID is the unique identifier for the reload notifier Graft node.
const NodeID graft.ID = "adapter.notifier"

func init() {
	graft.Register(graft.Node[ports.ReloadNotifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReloadNotifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewNotifier(log), nil
		},
	})
}
