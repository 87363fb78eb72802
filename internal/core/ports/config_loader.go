package ports

import "github.com/vividus-framework/vividus-cli/internal/core/domain"

// ConfigLoader defines the interface for loading project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadManifest reads vividus.yaml from the given project directory and
	// returns the validated manifest with defaults applied.
	LoadManifest(projectDir string) (domain.Manifest, error)

	// LoadSettings assembles the launch settings for the given project
	// directory from vividus.properties and VIVIDUS_* environment
	// overrides, with defaults applied.
	LoadSettings(projectDir string) (domain.Settings, error)
}
