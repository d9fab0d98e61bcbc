// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sprite/internal/adapters/config"
	_ "go.trai.ch/sprite/internal/adapters/declaration"
	_ "go.trai.ch/sprite/internal/adapters/fs"
	_ "go.trai.ch/sprite/internal/adapters/logger"
	_ "go.trai.ch/sprite/internal/adapters/shell"
	_ "go.trai.ch/sprite/internal/adapters/svg"
	_ "go.trai.ch/sprite/internal/adapters/telemetry"
	_ "go.trai.ch/sprite/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/sprite/internal/app"
	_ "go.trai.ch/sprite/internal/engine/sprite"
)
