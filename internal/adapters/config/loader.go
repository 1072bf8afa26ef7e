// Package config loads fwbom configuration and the build target description.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the build directory.
const DefaultFilename = "fwbom.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and applies defaults for everything it omits.
// A missing file is not an error.
func (l *Loader) Load(path string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			l.logger.Info("no config file at " + path + ", using defaults")
			return opts, nil
		}
		return opts, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var cfg Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return opts, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return l.apply(opts, &cfg, filepath.Dir(path))
}

func (l *Loader) apply(opts domain.Options, cfg *Configfile, baseDir string) (domain.Options, error) {
	if cfg.Ecosystem != "" {
		opts.Ecosystem = cfg.Ecosystem
	}
	if len(cfg.LicenseDelimiters) > 0 {
		opts.LicenseDelimiters = cfg.LicenseDelimiters
	}
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	if cfg.MaxArtifactSize > 0 {
		opts.MaxArtifactSize = cfg.MaxArtifactSize
	}
	if cfg.CacheSize > 0 {
		opts.CacheSize = cfg.CacheSize
	}
	if len(cfg.IndexNames) > 0 {
		opts.IndexNames = cfg.IndexNames
	}
	opts.InstalledOnly = cfg.InstalledOnly
	opts.RootName = cfg.Root.Name
	opts.RootSupplier = cfg.Root.Supplier
	opts.CPE.Require = cfg.CPE.Require

	if cfg.Retry != nil {
		retry, err := retryPolicy(cfg.Retry)
		if err != nil {
			return opts, err
		}
		opts.Retry = retry
	}

	exclude := slices.Clone(cfg.Exclude)
	if cfg.ExcludeFile != "" {
		listed, err := l.LoadPackageList(resolve(baseDir, cfg.ExcludeFile))
		if err != nil {
			return opts, err
		}
		exclude = append(exclude, listed...)
	}
	opts.Exclude = sortedUnique(exclude)

	ignore := slices.Clone(cfg.CPE.Ignore)
	if cfg.CPE.IgnoreFile != "" {
		listed, err := l.LoadPackageList(resolve(baseDir, cfg.CPE.IgnoreFile))
		if err != nil {
			return opts, err
		}
		ignore = append(ignore, listed...)
	}
	opts.CPE.Ignore = sortedUnique(ignore)

	overrides := make(map[string]string)
	if cfg.CPE.OverridesFile != "" {
		fromFile, err := l.LoadCPEOverrides(resolve(baseDir, cfg.CPE.OverridesFile))
		if err != nil {
			return opts, err
		}
		maps.Copy(overrides, fromFile)
	}
	maps.Copy(overrides, cfg.CPE.Overrides)
	opts.CPE.Overrides = overrides

	return opts, nil
}

func retryPolicy(dto *RetryDTO) (domain.RetryPolicy, error) {
	policy := domain.DefaultRetryPolicy()
	if dto.Attempts > 0 {
		policy.Attempts = dto.Attempts
	}
	if dto.Backoff != "" {
		backoff, err := time.ParseDuration(dto.Backoff)
		if err != nil {
			return policy, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid retry backoff"), "backoff", dto.Backoff)
		}
		policy.Backoff = backoff
	}
	return policy, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func sortedUnique(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	slices.Sort(list)
	return slices.Compact(list)
}
