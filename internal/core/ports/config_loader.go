package ports

import "go.mexp.dev/mexpd/internal/core/domain"

// ConfigLoader defines the interface for loading the service configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration starting from the given working
	// directory. When no configuration file exists, defaults are returned.
	Load(cwd string) (*domain.Config, error)
}
