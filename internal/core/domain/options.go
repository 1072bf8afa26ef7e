package domain

import (
	"runtime"
	"time"
)

const (
	// DefaultMaxArtifactSize bounds how many bytes of a single artifact are hashed.
	DefaultMaxArtifactSize int64 = 1 << 30
	// DefaultCacheSize is the number of artifact digests kept per run.
	DefaultCacheSize = 4096
	// DefaultIndexName is the file name of an opkg package index.
	DefaultIndexName = "Packages"
	// DefaultToolName is reported in the document metadata.
	DefaultToolName = "fwbom"
	// DefaultToolVendor is reported in the document metadata.
	DefaultToolVendor = "trai"
)

// RetryPolicy bounds how often a transient read failure is retried.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetryPolicy retries a read twice with a short pause.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: 50 * time.Millisecond}
}

// ReadPolicy bounds how artifacts are read for hashing.
type ReadPolicy struct {
	MaxSize int64
	Retry   RetryPolicy
}

// DiscoveryOptions controls how package index files are found and read.
type DiscoveryOptions struct {
	IndexNames []string
	Retry      RetryPolicy
}

// CPEPolicy controls CPE identifier overrides and enforcement.
type CPEPolicy struct {
	// Overrides maps a package name to the CPE identifier that replaces the declared one.
	Overrides map[string]string
	// Require aborts a run when a package outside Ignore has no CPE identifier.
	Require bool
	Ignore  []string
}

// ToolInfo describes the generator in the document metadata.
type ToolInfo struct {
	Vendor  string
	Name    string
	Version string
}

// Options is the resolved configuration of a run.
type Options struct {
	Ecosystem         string
	LicenseDelimiters []string
	Workers           int
	MaxArtifactSize   int64
	CacheSize         int
	Retry             RetryPolicy
	IndexNames        []string
	// InstalledOnly keeps only packages selected into the image by the build configuration.
	InstalledOnly bool
	Exclude       []string
	CPE           CPEPolicy
	Tool          ToolInfo
	// RootName overrides the name of the firmware root component.
	RootName string
	// RootSupplier names the supplier of the firmware image.
	RootSupplier string
}

// ReadPolicy returns the artifact read bounds of the run.
func (o Options) ReadPolicy() ReadPolicy {
	return ReadPolicy{MaxSize: o.MaxArtifactSize, Retry: o.Retry}
}

// DiscoveryOptions returns the index discovery settings of the run.
func (o Options) DiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{IndexNames: o.IndexNames, Retry: o.Retry}
}

// DefaultOptions returns the configuration used when no config file is present.
func DefaultOptions() Options {
	return Options{
		Ecosystem:         DefaultEcosystem,
		LicenseDelimiters: DefaultLicenseDelimiters,
		Workers:           runtime.NumCPU(),
		MaxArtifactSize:   DefaultMaxArtifactSize,
		CacheSize:         DefaultCacheSize,
		Retry:             DefaultRetryPolicy(),
		IndexNames:        []string{DefaultIndexName},
		CPE:               CPEPolicy{Overrides: map[string]string{}},
		Tool: ToolInfo{
			Vendor: DefaultToolVendor,
			Name:   DefaultToolName,
		},
	}
}

// BuildTarget identifies one firmware build being inventoried.
type BuildTarget struct {
	Dir       string
	Board     string
	Subtarget string
	Profile   string
	Version   string
	// Selected holds the packages built into the image. Nil when the build configuration was not found.
	Selected map[string]bool
}

// Name derives the firmware image name from the target identity.
func (t BuildTarget) Name() string {
	switch {
	case t.Board != "" && t.Subtarget != "":
		return "openwrt-" + t.Board + "-" + t.Subtarget
	case t.Board != "":
		return "openwrt-" + t.Board
	default:
		return "openwrt"
	}
}
