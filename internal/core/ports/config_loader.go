package ports

import "go.trai.ch/sprite/internal/core/domain"

// ConfigLoader defines the interface for loading the sprite configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path searches the working
	// directory for one of domain.ConfigFileNames.
	Load(path string) (*domain.Config, error)
}
