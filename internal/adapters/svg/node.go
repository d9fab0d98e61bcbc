package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/core/ports"
)

const (
	// BuilderNodeID is the unique identifier for the symbol builder Graft node.
	BuilderNodeID graft.ID = "adapter.svg.builder"
	// EncoderNodeID is the unique identifier for the sprite encoder Graft node.
	EncoderNodeID graft.ID = "adapter.svg.encoder"
)

func init() {
	graft.Register(graft.Node[ports.SymbolBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SymbolBuilder, error) {
			return NewBuilder(), nil
		},
	})

	graft.Register(graft.Node[ports.SpriteEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SpriteEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
