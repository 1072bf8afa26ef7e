package ports

import "go.trai.ch/fwbom/internal/core/domain"

// ConfigLoader defines the interface for loading run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields the defaults.
	Load(path string) (domain.Options, error)
	// LoadTarget reads the identity of the build target rooted at dir.
	LoadTarget(dir string) (domain.BuildTarget, error)
	// LoadPackageList reads a list of package names, one per line or comma separated.
	LoadPackageList(path string) ([]string, error)
	// LoadCPEOverrides reads a JSON or YAML mapping of package name to CPE identifier.
	LoadCPEOverrides(path string) (map[string]string, error)
}
