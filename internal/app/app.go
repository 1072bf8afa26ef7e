// Package app implements the application layer for fwbom.
package app

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fwbom/internal/adapters/output" //nolint:depguard // Output path conventions
	"go.trai.ch/fwbom/internal/build"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/fwbom/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

const (
	// ConfigFilename is looked up in the build directory when no config path is given.
	ConfigFilename = "fwbom.yaml"
	// DefaultOutputDir receives documents when no output path is given.
	DefaultOutputDir = "sbom-output"
	// DocumentSuffix is appended to the root component name to form the document file name.
	DocumentSuffix = ".cdx.json"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	store        ports.DocumentStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, p *pipeline.Pipeline, store ports.DocumentStore, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		pipeline:     p,
		store:        store,
		logger:       logger,
	}
}

// RunOptions holds the command line overrides of a run.
type RunOptions struct {
	BuildDir      string
	Output        string
	ConfigPath    string
	Name          string
	ExcludeFile   string
	CPEFile       string
	IgnoreCPEFile string
	RequireCPE    bool
	Diff          bool
	Workers       int
}

// RunResult describes what a successful run produced.
type RunResult struct {
	Output     string
	DiffOutput string
	Report     *domain.Report
}

// Run inventories the build directory and writes the document.
func (a *App) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.BuildDir == "" {
		opts.BuildDir = "."
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(opts.BuildDir, ConfigFilename)
	}

	// 1. Resolve configuration
	options, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if err := a.applyOverrides(&options, opts); err != nil {
		return nil, err
	}

	target, err := a.configLoader.LoadTarget(opts.BuildDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build target")
	}

	// 2. Inventory
	res, err := a.pipeline.Run(ctx, target, options)
	if err != nil {
		return nil, zerr.Wrap(err, "inventory failed")
	}

	// 3. Persist
	out := opts.Output
	if out == "" {
		out = filepath.Join(DefaultOutputDir, res.BOM.Metadata.Component.Name+DocumentSuffix)
	}
	written, err := a.store.WriteBOM(out, res.BOM)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to write document")
	}

	result := &RunResult{Output: written, Report: res.Report}
	if opts.Diff {
		diff, err := a.store.WriteMissingCPE(DiffPath(out), res.Report.MissingCPE)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to write missing CPE list")
		}
		result.DiffOutput = diff
	}

	a.logger.Info("wrote " + written)
	return result, nil
}

// DiffPath derives the location of the missing-CPE list from the document path.
func DiffPath(out string) string {
	if out == output.StdoutPath {
		return out
	}
	return strings.TrimSuffix(out, ".json") + output.MissingCPESuffix
}

func (a *App) applyOverrides(options *domain.Options, opts RunOptions) error {
	if opts.Name != "" {
		options.RootName = opts.Name
	}
	if opts.Workers > 0 {
		options.Workers = opts.Workers
	}
	if opts.RequireCPE {
		options.CPE.Require = true
	}
	options.Tool.Version = build.Version

	if opts.ExcludeFile != "" {
		names, err := a.configLoader.LoadPackageList(opts.ExcludeFile)
		if err != nil {
			return zerr.Wrap(err, "failed to load exclude list")
		}
		options.Exclude = union(options.Exclude, names)
	}

	if opts.IgnoreCPEFile != "" {
		names, err := a.configLoader.LoadPackageList(opts.IgnoreCPEFile)
		if err != nil {
			return zerr.Wrap(err, "failed to load CPE ignore list")
		}
		options.CPE.Ignore = union(options.CPE.Ignore, names)
	}

	if opts.CPEFile != "" {
		overrides, err := a.configLoader.LoadCPEOverrides(opts.CPEFile)
		if err != nil {
			return zerr.Wrap(err, "failed to load CPE overrides")
		}
		if options.CPE.Overrides == nil {
			options.CPE.Overrides = make(map[string]string, len(overrides))
		}
		for name, cpe := range overrides {
			options.CPE.Overrides[name] = cpe
		}
	}
	return nil
}

func union(a, b []string) []string {
	out := slices.Concat(a, b)
	slices.Sort(out)
	return slices.Compact(out)
}
