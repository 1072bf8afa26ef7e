package domain

import (
	"maps"
	"slices"

	packageurl "github.com/package-url/packageurl-go"
)

const (
	// UnknownVersion is recorded when a package declares no version.
	UnknownVersion = "unknown"

	// UnspecifiedLicense is recorded when a package declares no license.
	UnspecifiedLicense = "unspecified"

	// DefaultEcosystem is the package-url type used for firmware packages.
	DefaultEcosystem = "openwrt"

	// HashAlgorithmSHA256 names the only digest algorithm computed for artifacts.
	HashAlgorithmSHA256 = "SHA-256"
)

// Hash is a content digest of a package artifact.
type Hash struct {
	Algorithm string
	Value     string
}

// SourceRef locates the block a record was extracted from.
type SourceRef struct {
	// Index is the path of the package index file.
	Index string
	// Ordinal is the zero-based position of the block within the index.
	Ordinal int
}

// Compare orders source references by index path, then by position.
func (s SourceRef) Compare(other SourceRef) int {
	if s.Index != other.Index {
		if s.Index < other.Index {
			return -1
		}
		return 1
	}
	return s.Ordinal - other.Ordinal
}

// ComponentRecord is one discovered software package.
type ComponentRecord struct {
	ID           InternedString
	Ecosystem    string
	Name         string
	Version      string
	Licenses     []string
	Origin       *string
	Supplier     *string
	CPE          *string
	Architecture *string
	Hash         *Hash
	// Depends holds the raw declared dependency tokens, constraints included.
	Depends []string
	// Properties carries free-form annotations such as the firmware board of the root.
	Properties map[string]string
	Source     SourceRef
}

// NewComponentID synthesizes the package-url identifier of a component.
func NewComponentID(ecosystem, name, version string) InternedString {
	if ecosystem == "" {
		ecosystem = DefaultEcosystem
	}
	purl := packageurl.NewPackageURL(ecosystem, "", name, version, nil, "")
	return NewInternedString(purl.ToString())
}

// NewRootID synthesizes the identifier of the synthetic firmware root.
func NewRootID(name, version string) InternedString {
	purl := packageurl.NewPackageURL(packageurl.TypeGeneric, "", name, version, nil, "")
	return NewInternedString(purl.ToString())
}

// HasVersion reports whether the record carries a declared version.
func (c *ComponentRecord) HasVersion() bool {
	return c.Version != "" && c.Version != UnknownVersion
}

// HasLicense reports whether the record carries at least one declared license.
func (c *ComponentRecord) HasLicense() bool {
	return len(c.Licenses) > 0 && !slices.Equal(c.Licenses, []string{UnspecifiedLicense})
}

// Rekey recomputes the identifier from the current ecosystem, name and version.
func (c *ComponentRecord) Rekey() {
	c.ID = NewComponentID(c.Ecosystem, c.Name, c.Version)
}

// FillFrom copies every field that is missing on c from other.
// Version is handled by the graph, since it changes the identifier.
func (c *ComponentRecord) FillFrom(other *ComponentRecord) {
	if !c.HasLicense() && other.HasLicense() {
		c.Licenses = slices.Clone(other.Licenses)
	}
	if c.Origin == nil {
		c.Origin = other.Origin
	}
	if c.Supplier == nil {
		c.Supplier = other.Supplier
	}
	if c.CPE == nil {
		c.CPE = other.CPE
	}
	if c.Architecture == nil {
		c.Architecture = other.Architecture
	}
	if c.Hash == nil {
		c.Hash = other.Hash
	}
	if len(c.Depends) == 0 {
		c.Depends = slices.Clone(other.Depends)
	}
	if c.Properties == nil {
		c.Properties = maps.Clone(other.Properties)
	}
}
