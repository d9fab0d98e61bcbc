package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sprite/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sprite/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sprite/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sprite/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/sprite/internal/core/ports"
	"go.trai.ch/sprite/internal/engine/sprite"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			sprite.NodeID,
			shell.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	deps, err := graft.Dep[sprite.Deps](ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[ports.ReloadNotifier](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, deps, notifier, w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
