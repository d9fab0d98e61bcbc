package declaration

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/core/ports"
)

// NodeID is the unique identifier for the declaration renderer Graft node.
const NodeID graft.ID = "adapter.declaration"

func init() {
	graft.Register(graft.Node[ports.DeclarationRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DeclarationRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
