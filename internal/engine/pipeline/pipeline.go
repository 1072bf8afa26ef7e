// Package pipeline runs one firmware inventory from build tree to SBOM document.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/fwbom/internal/engine/extractor"
	"go.trai.ch/fwbom/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Root component property names.
const (
	PropertyBoard     = "openwrt:board"
	PropertySubtarget = "openwrt:subtarget"
	PropertyProfile   = "openwrt:profile"
)

// CacheFactory creates the digest cache of one run.
type CacheFactory func(size int) (ports.DigestCache, error)

// Result is the outcome of a successful run.
type Result struct {
	BOM    *domain.BOM
	Report *domain.Report
	Graph  *domain.ComponentGraph
}

// Pipeline inventories build targets. It keeps no per-run state and may be reused.
type Pipeline struct {
	source     ports.PackageSource
	hasher     ports.Hasher
	serializer ports.Serializer
	telemetry  ports.Telemetry
	newCache   CacheFactory
}

// New creates a Pipeline.
func New(
	source ports.PackageSource,
	hasher ports.Hasher,
	serializer ports.Serializer,
	telemetry ports.Telemetry,
	newCache CacheFactory,
) *Pipeline {
	return &Pipeline{
		source:     source,
		hasher:     hasher,
		serializer: serializer,
		telemetry:  telemetry,
		newCache:   newCache,
	}
}

type run struct {
	*Pipeline
	target  domain.BuildTarget
	opts    domain.Options
	report  *domain.Report
	blocks  []domain.RawBlock
	records []*domain.ComponentRecord
	graph   *domain.ComponentGraph
	bom     *domain.BOM
}

// Run inventories target. Non-fatal problems are collected in the result report.
// Configuration problems and an empty inventory abort the run without a document.
func (p *Pipeline) Run(ctx context.Context, target domain.BuildTarget, opts domain.Options) (*Result, error) {
	r := &run{
		Pipeline: p,
		target:   target,
		opts:     opts,
		report:   domain.NewReport(),
	}

	stages := []struct {
		name domain.Stage
		fn   func(context.Context) error
	}{
		{domain.StageDiscover, r.discover},
		{domain.StageExtract, r.extract},
		{domain.StageFilter, r.filter},
		{domain.StageMerge, r.merge},
		{domain.StageResolve, r.resolve},
		{domain.StageLink, r.link},
		{domain.StagePolicy, r.policy},
		{domain.StageSerialize, r.serialize},
	}
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.stage(ctx, s.name, s.fn); err != nil {
			return nil, err
		}
	}

	return &Result{BOM: r.bom, Report: r.report, Graph: r.graph}, nil
}

func (r *run) stage(ctx context.Context, name domain.Stage, fn func(context.Context) error) error {
	ctx, vertex := r.telemetry.Record(ctx, string(name), ports.WithGroup(r.target.Name()))
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func logf(ctx context.Context, level domain.LogLevel, format string, args ...any) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(level, fmt.Sprintf(format, args...))
	}
}

func (r *run) discover(ctx context.Context) error {
	blocks, warnings, err := r.source.Discover(ctx, r.target.Dir, r.opts.DiscoveryOptions())
	if err != nil {
		return err
	}
	r.report.Add(warnings...)
	r.blocks = blocks
	logf(ctx, domain.LogLevelInfo, "found %d package blocks", len(blocks))
	return nil
}

type extraction struct {
	rec      *domain.ComponentRecord
	warnings []domain.Warning
}

func (r *run) extract(ctx context.Context) error {
	cache, err := r.newCache(r.opts.CacheSize)
	if err != nil {
		return err
	}
	ex := extractor.New(r.hasher, cache, extractor.Settings{
		Ecosystem:         r.opts.Ecosystem,
		LicenseDelimiters: r.opts.LicenseDelimiters,
		Read:              r.opts.ReadPolicy(),
	})

	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Each worker owns one slot, so results keep block order without locking.
	results := make([]extraction, len(r.blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range r.blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, warnings, err := ex.Extract(&r.blocks[i])
			if err != nil {
				warnings = append(warnings, domain.NewWarningFromError(domain.WarningExtraction, err))
			}
			results[i] = extraction{rec: rec, warnings: warnings}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		r.report.Add(res.warnings...)
		if res.rec != nil {
			r.records = append(r.records, res.rec)
		}
	}
	slices.SortStableFunc(r.records, func(a, b *domain.ComponentRecord) int {
		return a.Source.Compare(b.Source)
	})
	logf(ctx, domain.LogLevelInfo, "extracted %d packages", len(r.records))
	return nil
}

func (r *run) filter(ctx context.Context) error {
	excluded := make(map[string]bool, len(r.opts.Exclude))
	for _, name := range r.opts.Exclude {
		excluded[name] = true
	}

	installedOnly := r.opts.InstalledOnly
	if installedOnly && r.target.Selected == nil {
		r.report.Add(domain.Warning{
			Kind:    domain.WarningConfiguration,
			Package: r.target.Name(),
			Field:   "installed_only",
			Detail:  "no build configuration found, keeping all packages",
		})
		logf(ctx, domain.LogLevelDebug, "installed-only disabled for %s", r.target.Name())
		installedOnly = false
	}

	kept := r.records[:0]
	for _, rec := range r.records {
		if excluded[rec.Name] || (installedOnly && !r.target.Selected[rec.Name]) {
			r.report.AddExcluded(rec.Name)
			continue
		}
		if cpe, ok := r.opts.CPE.Overrides[rec.Name]; ok {
			rec.CPE = &cpe
		}
		kept = append(kept, rec)
	}
	r.records = kept
	if len(r.records) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoPackages, "no packages left after extraction and filtering"), "dir", r.target.Dir)
	}
	return nil
}

func (r *run) merge(_ context.Context) error {
	r.graph = domain.NewComponentGraph()
	for _, rec := range r.records {
		if w := r.graph.Merge(rec); w != nil {
			r.report.Add(*w)
		}
	}
	return nil
}

func (r *run) resolve(ctx context.Context) error {
	edges, warnings := resolver.Resolve(r.graph)
	r.report.Add(warnings...)
	for _, e := range edges {
		if w := r.graph.AddEdge(e); w != nil {
			r.report.Add(*w)
		}
	}
	logf(ctx, domain.LogLevelInfo, "resolved %d dependency edges", len(edges))
	return nil
}

func (r *run) link(_ context.Context) error {
	r.graph.SetRoot(r.root())
	r.graph.Finalize()
	return nil
}

func (r *run) root() *domain.ComponentRecord {
	name := r.opts.RootName
	if name == "" {
		name = r.target.Name()
	}
	version := r.target.Version
	if version == "" {
		version = domain.UnknownVersion
	}

	root := &domain.ComponentRecord{
		ID:         domain.NewRootID(name, version),
		Ecosystem:  "generic",
		Name:       name,
		Version:    version,
		Properties: map[string]string{},
	}
	if r.opts.RootSupplier != "" {
		supplier := r.opts.RootSupplier
		root.Supplier = &supplier
	}
	for key, value := range map[string]string{
		PropertyBoard:     r.target.Board,
		PropertySubtarget: r.target.Subtarget,
		PropertyProfile:   r.target.Profile,
	} {
		if value != "" {
			root.Properties[key] = value
		}
	}
	return root
}

func (r *run) policy(ctx context.Context) error {
	ignored := make(map[string]bool, len(r.opts.CPE.Ignore))
	for _, name := range r.opts.CPE.Ignore {
		ignored[name] = true
	}

	var offending []string
	for rec := range r.graph.Components() {
		if rec.CPE != nil || ignored[rec.Name] {
			continue
		}
		r.report.AddMissingCPE(rec.Name)
		offending = append(offending, rec.Name)
	}
	if len(offending) > 0 {
		logf(ctx, domain.LogLevelInfo, "%d packages without CPE identifier", len(offending))
	}

	if r.opts.CPE.Require && len(offending) > 0 {
		slices.Sort(offending)
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingCPE, "packages without CPE identifier"),
			"count", len(offending)), "packages", strings.Join(offending, ","))
	}
	return nil
}

func (r *run) serialize(_ context.Context) error {
	bom, err := r.serializer.Serialize(r.graph, r.opts.Tool)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize document")
	}
	r.bom = bom
	return nil
}
