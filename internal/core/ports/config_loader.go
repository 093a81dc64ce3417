package ports

import "go.trai.ch/recheck/internal/core/domain"

// ConfigLoader defines the interface for loading the check manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest reachable from the given working directory.
	// When no manifest file exists the built-in manifest is returned.
	Load(cwd string) (*domain.Manifest, error)
}
