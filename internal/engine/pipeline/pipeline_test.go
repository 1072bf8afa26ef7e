package pipeline_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwbom/internal/adapters/cyclonedx"
	"go.trai.ch/fwbom/internal/adapters/fs"
	"go.trai.ch/fwbom/internal/adapters/opkg"
	"go.trai.ch/fwbom/internal/adapters/telemetry/progrock"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/fwbom/internal/engine/pipeline"
)

type pkg struct {
	name, version, depends, cpe, filename string
}

func (p pkg) block() string {
	var b strings.Builder
	b.WriteString("Package: " + p.name + "\n")
	if p.version != "" {
		b.WriteString("Version: " + p.version + "\n")
	}
	if p.depends != "" {
		b.WriteString("Depends: " + p.depends + "\n")
	}
	b.WriteString("License: GPL-2.0\n")
	if p.cpe != "" {
		b.WriteString("CPE-ID: " + p.cpe + "\n")
	}
	if p.filename != "" {
		b.WriteString("Filename: " + p.filename + "\n")
	}
	return b.String()
}

func writeIndex(t *testing.T, dir, feed string, pkgs ...pkg) {
	t.Helper()
	blocks := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		blocks = append(blocks, p.block())
	}
	path := filepath.Join(dir, "bin", "packages", "mips_24kc", feed, "Packages")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(blocks, "\n")), 0o600)) //nolint:gosec // Test file permissions
}

func newPipeline(clock time.Time) *pipeline.Pipeline {
	return pipeline.New(
		opkg.NewSource(fs.NewWalker()),
		fs.NewHasher(),
		cyclonedx.NewSerializer(func() time.Time { return clock }),
		progrock.New(),
		func(size int) (ports.DigestCache, error) { return fs.NewDigestCache(size) },
	)
}

func target(dir string) domain.BuildTarget {
	return domain.BuildTarget{Dir: dir, Board: "ath79", Subtarget: "generic", Version: "23.05.2"}
}

func options() domain.Options {
	opts := domain.DefaultOptions()
	opts.Workers = 4
	opts.Tool.Version = "test"
	return opts
}

func refs(bom *domain.BOM) []string {
	out := make([]string, 0, len(bom.Components))
	for _, c := range bom.Components {
		out = append(out, c.BOMRef)
	}
	return out
}

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestRun_LinearChainLinksRootToHead(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base",
		pkg{name: "a", version: "1.0", depends: "b"},
		pkg{name: "b", version: "2.0", depends: "c"},
		pkg{name: "c", version: "3.0"},
	)

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)

	bom := res.BOM
	assert.Equal(t, []string{"pkg:openwrt/a@1.0", "pkg:openwrt/b@2.0", "pkg:openwrt/c@3.0"}, refs(bom))
	assert.Equal(t, "pkg:generic/openwrt-ath79-generic@23.05.2", bom.Metadata.Component.BOMRef)
	assert.Equal(t, []domain.BOMDependency{
		{Ref: bom.Metadata.Component.BOMRef, DependsOn: []string{"pkg:openwrt/a@1.0"}},
		{Ref: "pkg:openwrt/a@1.0", DependsOn: []string{"pkg:openwrt/b@2.0"}},
		{Ref: "pkg:openwrt/b@2.0", DependsOn: []string{"pkg:openwrt/c@3.0"}},
	}, bom.Dependencies)
	assert.Empty(t, res.Report.Warnings)
	assert.Equal(t, []string{"a", "b", "c"}, res.Report.MissingCPE)
}

func TestRun_DanglingDependencyIsDroppedWithWarning(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base", pkg{name: "a", version: "1.0", depends: "libghost, b"}, pkg{name: "b", version: "1.0"})

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)

	ws := res.Report.Of(domain.WarningEdgeResolution)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0].Detail, "libghost")
	for _, d := range res.BOM.Dependencies {
		for _, ref := range d.DependsOn {
			assert.NotContains(t, ref, "libghost")
		}
	}
}

func TestRun_MissingVersionBecomesUnknown(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base", pkg{name: "base-files"})

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)
	require.Len(t, res.BOM.Components, 1)
	assert.Equal(t, "unknown", res.BOM.Components[0].Version)
	assert.Len(t, res.Report.Of(domain.WarningExtraction), 1)
}

func TestRun_DuplicateNameKeepsFirstVersion(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base", pkg{name: "zlib", version: "1.3"})
	writeIndex(t, dir, "packages", pkg{name: "zlib", version: "1.2.13"})

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)
	require.Len(t, res.BOM.Components, 1)
	assert.Equal(t, "1.3", res.BOM.Components[0].Version)

	ws := res.Report.Of(domain.WarningMergeConflict)
	require.Len(t, ws, 1)
	assert.Equal(t, "zlib", ws[0].Package)
}

func TestRun_MissingBuildDirIsFatal(t *testing.T) {
	res, err := newPipeline(now).Run(context.Background(), target(filepath.Join(t.TempDir(), "nope")), options())
	require.ErrorIs(t, err, domain.ErrBuildDirNotFound)
	assert.True(t, domain.IsFatalConfig(err))
	assert.Nil(t, res)
}

func TestRun_NoPackages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0o750))

	_, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.ErrorIs(t, err, domain.ErrNoPackages)
}

func TestRun_IdempotentExceptTimestamp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin", "packages", "mips_24kc", "base"), 0o750))
	artifact := filepath.Join(dir, "bin", "packages", "mips_24kc", "base", "a_1.0.ipk")
	require.NoError(t, os.WriteFile(artifact, []byte("ipk payload"), 0o600)) //nolint:gosec // Test file permissions
	writeIndex(t, dir, "base", pkg{name: "a", version: "1.0", filename: "a_1.0.ipk", depends: "b"}, pkg{name: "b", version: "1.0"})

	first, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)
	second, err := newPipeline(now.Add(time.Minute)).Run(context.Background(), target(dir), options())
	require.NoError(t, err)

	require.Len(t, first.BOM.Components[0].Hashes, 1)
	assert.Len(t, first.BOM.Components[0].Hashes[0].Content, 64)

	assert.NotEqual(t, first.BOM.Metadata.Timestamp, second.BOM.Metadata.Timestamp)
	second.BOM.Metadata.Timestamp = first.BOM.Metadata.Timestamp

	a, err := json.Marshal(first.BOM)
	require.NoError(t, err)
	b, err := json.Marshal(second.BOM)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_EnumerationOrderDoesNotMatter(t *testing.T) {
	pkgs := []pkg{
		{name: "a", version: "1", depends: "c"},
		{name: "b", version: "1", depends: "a, c"},
		{name: "c", version: "1"},
		{name: "d", version: "1", depends: "b"},
	}

	forward := t.TempDir()
	writeIndex(t, forward, "base", pkgs...)
	backward := t.TempDir()
	writeIndex(t, backward, "base", pkgs[3], pkgs[2], pkgs[1], pkgs[0])

	first, err := newPipeline(now).Run(context.Background(), target(forward), options())
	require.NoError(t, err)
	second, err := newPipeline(now).Run(context.Background(), target(backward), options())
	require.NoError(t, err)

	assert.Equal(t, refs(first.BOM), refs(second.BOM))
	assert.Equal(t, first.BOM.Dependencies, second.BOM.Dependencies)
	assert.Equal(t, first.BOM.SerialNumber, second.BOM.SerialNumber)
}

func TestRun_ReferentialIntegrity(t *testing.T) {
	dir := t.TempDir()
	var pkgs []pkg
	for i := range 20 {
		pkgs = append(pkgs, pkg{
			name:    fmt.Sprintf("p%02d", i),
			version: "1",
			depends: fmt.Sprintf("p%02d, p%02d, missing%d", (i+1)%20, (i*7)%20, i),
		})
	}
	writeIndex(t, dir, "base", pkgs...)

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)

	known := map[string]bool{res.BOM.Metadata.Component.BOMRef: true}
	for _, c := range res.BOM.Components {
		assert.False(t, known[c.BOMRef], "duplicate bom-ref %s", c.BOMRef)
		known[c.BOMRef] = true
	}
	for _, d := range res.BOM.Dependencies {
		assert.True(t, known[d.Ref])
		for _, ref := range d.DependsOn {
			assert.True(t, known[ref], "dangling reference %s", ref)
			assert.NotEqual(t, d.Ref, ref, "self-loop on %s", ref)
		}
	}
}

func TestRun_CycleIsReachableFromRoot(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base", pkg{name: "a", version: "1", depends: "b"}, pkg{name: "b", version: "1", depends: "a"})

	res, err := newPipeline(now).Run(context.Background(), target(dir), options())
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg:openwrt/a@1"}, res.BOM.Dependencies[0].DependsOn)
}

func TestRun_FilterAndCPEPolicy(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base",
		pkg{name: "busybox", version: "1.36.1"},
		pkg{name: "dropbear", version: "2022.82", cpe: "cpe:/a:old"},
		pkg{name: "kmod-debug", version: "6.1"},
		pkg{name: "base-files", version: "1"},
		pkg{name: "luci", version: "git"},
	)

	tgt := target(dir)
	tgt.Selected = map[string]bool{"busybox": true, "dropbear": true, "kmod-debug": true, "base-files": true}

	opts := options()
	opts.Exclude = []string{"kmod-debug"}
	opts.InstalledOnly = true
	opts.CPE.Overrides = map[string]string{
		"dropbear": "cpe:/a:dropbear_ssh_project:dropbear_ssh",
		"busybox":  "cpe:/a:busybox:busybox",
	}
	opts.CPE.Ignore = []string{"base-files"}
	opts.RootName = "my-router"
	opts.RootSupplier = "ACME"

	res, err := newPipeline(now).Run(context.Background(), tgt, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"pkg:openwrt/base-files@1", "pkg:openwrt/busybox@1.36.1", "pkg:openwrt/dropbear@2022.82"}, refs(res.BOM))
	assert.Equal(t, []string{"kmod-debug", "luci"}, res.Report.Excluded)
	assert.Empty(t, res.Report.MissingCPE)
	require.NotNil(t, res.BOM.Components[2].CPE)
	assert.Equal(t, "cpe:/a:dropbear_ssh_project:dropbear_ssh", *res.BOM.Components[2].CPE)

	root := res.BOM.Metadata.Component
	assert.Equal(t, "my-router", root.Name)
	assert.Equal(t, &domain.BOMEntity{Name: "ACME"}, root.Supplier)

	opts.CPE.Ignore = nil
	opts.CPE.Require = true
	_, err = newPipeline(now).Run(context.Background(), tgt, opts)
	require.ErrorIs(t, err, domain.ErrMissingCPE)
	assert.True(t, domain.IsFatalConfig(err))
	assert.Equal(t, "base-files", domain.ErrorField(err, "packages"))
}

func TestRun_InstalledOnlyWithoutBuildConfigKeepsAll(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base",
		pkg{name: "busybox", version: "1.36.1"},
		pkg{name: "luci", version: "git"},
	)

	opts := options()
	opts.InstalledOnly = true

	res, err := newPipeline(now).Run(context.Background(), target(dir), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"pkg:openwrt/busybox@1.36.1", "pkg:openwrt/luci@git"}, refs(res.BOM))
	assert.Empty(t, res.Report.Excluded)

	ws := res.Report.Of(domain.WarningConfiguration)
	require.Len(t, ws, 1)
	assert.Equal(t, "openwrt-ath79-generic", ws[0].Package)
	assert.Equal(t, "installed_only", ws[0].Field)
	assert.Contains(t, ws[0].Detail, "no build configuration found")
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "base", pkg{name: "a", version: "1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPipeline(now).Run(ctx, target(dir), options())
	assert.ErrorIs(t, err, context.Canceled)
}
