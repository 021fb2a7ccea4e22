package ports

import "go.trai.ch/csspipe/internal/core/domain"

// ConfigLoader reads the optional project configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path looks for the default
	// file in dir and yields default options when it does not exist.
	Load(dir, path string) (domain.Options, error)
}
