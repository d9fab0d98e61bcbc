package sprite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/adapters/declaration" //nolint:depguard // Wired in engine layer
	"go.trai.ch/sprite/internal/adapters/fs"          //nolint:depguard // Wired in engine layer
	"go.trai.ch/sprite/internal/adapters/logger"      //nolint:depguard // Wired in engine layer
	"go.trai.ch/sprite/internal/adapters/svg"         //nolint:depguard // Wired in engine layer
	"go.trai.ch/sprite/internal/adapters/telemetry"   //nolint:depguard // Wired in engine layer
	"go.trai.ch/sprite/internal/core/ports"
)

// NodeID is the unique identifier for the engine dependencies Graft node.
const NodeID graft.ID = "engine.sprite"

func init() {
	graft.Register(graft.Node[Deps]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			svg.BuilderNodeID,
			svg.EncoderNodeID,
			declaration.NodeID,
			fs.WalkerNodeID,
			fs.WriterNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runDepsNode,
	})
}

func runDepsNode(ctx context.Context) (Deps, error) {
	builder, err := graft.Dep[ports.SymbolBuilder](ctx)
	if err != nil {
		return Deps{}, err
	}
	encoder, err := graft.Dep[ports.SpriteEncoder](ctx)
	if err != nil {
		return Deps{}, err
	}
	declarations, err := graft.Dep[ports.DeclarationRenderer](ctx)
	if err != nil {
		return Deps{}, err
	}
	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return Deps{}, err
	}
	files, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return Deps{}, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return Deps{}, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Builder:      builder,
		Encoder:      encoder,
		Declarations: declarations,
		Walker:       walker,
		Files:        files,
		Logger:       log,
		Tracer:       tracer,
	}, nil
}
