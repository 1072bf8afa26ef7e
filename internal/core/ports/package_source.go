package ports

import (
	"context"

	"go.trai.ch/fwbom/internal/core/domain"
)

// PackageSource discovers the package metadata blocks of a build target.
//
//go:generate mockgen -source=package_source.go -destination=mocks/mock_package_source.go -package=mocks
type PackageSource interface {
	// Discover returns every metadata block found under the build directory.
	// Unreadable index files are reported as warnings; a missing or unreadable
	// build directory is a fatal configuration error.
	Discover(ctx context.Context, dir string, opts domain.DiscoveryOptions) ([]domain.RawBlock, []domain.Warning, error)
}
