package opkg

import (
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/fwbom/internal/adapters/fs"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

// binDir is where the build system publishes package feeds.
const binDir = "bin"

var _ ports.PackageSource = (*Source)(nil)

// Source discovers package metadata blocks in an OpenWrt-style build tree.
type Source struct {
	walker *fs.Walker
}

// NewSource creates a new Source.
func NewSource(walker *fs.Walker) *Source {
	return &Source{walker: walker}
}

// Discover finds every package index under dir/bin (or dir itself when there is no
// bin directory) and parses it. Index files are visited in lexical path order.
func (s *Source) Discover(
	ctx context.Context, dir string, opts domain.DiscoveryOptions,
) ([]domain.RawBlock, []domain.Warning, error) {
	if err := checkBuildDir(dir); err != nil {
		return nil, nil, err
	}

	root := dir
	if info, err := os.Stat(filepath.Join(dir, binDir)); err == nil && info.IsDir() {
		root = filepath.Join(dir, binDir)
	}

	names := opts.IndexNames
	if len(names) == 0 {
		names = []string{domain.DefaultIndexName}
	}

	var (
		indexes  []string
		warnings []domain.Warning
	)
	for path, err := range s.walker.FindFiles(root, names, nil) {
		if err != nil {
			if path == root {
				return nil, nil, zerr.With(zerr.Wrap(domain.ErrBuildDirUnreadable, "fatal configuration error"), "path", root)
			}
			warnings = append(warnings, indexWarning(dir, path, err))
			continue
		}
		indexes = append(indexes, path)
	}
	slices.Sort(indexes)

	var blocks []domain.RawBlock
	for _, index := range indexes {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		data, err := fs.ReadFile(index, opts.Retry)
		if err != nil {
			warnings = append(warnings, indexWarning(dir, index, err))
			continue
		}

		parsed, err := Parse(bytes.NewReader(data), index)
		if err != nil {
			warnings = append(warnings, indexWarning(dir, index, err))
			continue
		}
		blocks = append(blocks, parsed...)
	}

	return blocks, warnings, nil
}

func checkBuildDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return zerr.With(zerr.Wrap(domain.ErrBuildDirNotFound, "fatal configuration error"), "path", dir)
	case err != nil:
		return zerr.With(zerr.Wrap(domain.ErrBuildDirUnreadable, "fatal configuration error"), "path", dir)
	case !info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrBuildDirNotFound, "fatal configuration error: not a directory"), "path", dir)
	}

	if _, err := os.ReadDir(dir); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildDirUnreadable, "fatal configuration error"), "path", dir)
	}
	return nil
}

func indexWarning(dir, path string, err error) domain.Warning {
	rel, relErr := filepath.Rel(dir, path)
	if relErr != nil {
		rel = path
	}
	return domain.Warning{
		Kind:    domain.WarningExtraction,
		Package: rel,
		Field:   "index",
		Detail:  domain.ErrIndexUnreadable.Error() + ": " + err.Error(),
	}
}
