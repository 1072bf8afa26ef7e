package cyclonedx_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwbom/internal/adapters/cyclonedx"
	"go.trai.ch/fwbom/internal/core/domain"
)

var fixed = time.Date(2026, 10, 17, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

func ptr(s string) *string { return &s }

func record(name, version string) *domain.ComponentRecord {
	r := &domain.ComponentRecord{
		Ecosystem: domain.DefaultEcosystem,
		Name:      name,
		Version:   version,
		Licenses:  []string{domain.UnspecifiedLicense},
	}
	r.Rekey()
	return r
}

func chain(t *testing.T) *domain.ComponentGraph {
	t.Helper()

	a, b, c := record("a", "1.0"), record("b", "2.0"), record("c", "3.0")
	a.Licenses = []string{"GPL-2.0", "MIT"}
	a.Supplier = ptr("OpenWrt Developers")
	a.CPE = ptr("cpe:/a:vendor:a:1.0")
	a.Hash = &domain.Hash{Algorithm: domain.HashAlgorithmSHA256, Value: "abc"}
	a.Origin = ptr("https://example.org/a-1.0.tar.gz")
	a.Architecture = ptr("mips_24kc")

	g := domain.NewComponentGraph()
	for _, r := range []*domain.ComponentRecord{c, b, a} {
		require.Nil(t, g.Merge(r))
	}
	require.Nil(t, g.AddEdge(domain.DependencyEdge{Consumer: a.ID, Dependency: b.ID}))
	require.Nil(t, g.AddEdge(domain.DependencyEdge{Consumer: b.ID, Dependency: c.ID}))

	root := &domain.ComponentRecord{
		ID:         domain.NewRootID("openwrt-ath79-generic", "23.05.2"),
		Name:       "openwrt-ath79-generic",
		Version:    "23.05.2",
		Properties: map[string]string{"openwrt:board": "ath79"},
	}
	g.SetRoot(root)
	g.Finalize()
	return g
}

func TestSerializer_Serialize(t *testing.T) {
	s := cyclonedx.NewSerializer(func() time.Time { return fixed })

	bom, err := s.Serialize(chain(t), domain.ToolInfo{Vendor: "trai", Name: "fwbom", Version: "dev"})
	require.NoError(t, err)

	assert.Equal(t, "CycloneDX", bom.BOMFormat)
	assert.Equal(t, "1.4", bom.SpecVersion)
	assert.Equal(t, 1, bom.Version)
	assert.True(t, strings.HasPrefix(bom.SerialNumber, "urn:uuid:"))
	assert.Equal(t, "2026-10-17T10:00:00Z", bom.Metadata.Timestamp)
	assert.Equal(t, []domain.BOMTool{{Vendor: "trai", Name: "fwbom", Version: "dev"}}, bom.Metadata.Tools)

	root := bom.Metadata.Component
	assert.Equal(t, "firmware", root.Type)
	assert.Equal(t, "pkg:generic/openwrt-ath79-generic@23.05.2", root.BOMRef)
	assert.Equal(t, []domain.BOMProperty{{Name: "openwrt:board", Value: "ath79"}}, root.Properties)

	require.Len(t, bom.Components, 3)
	a := bom.Components[0]
	assert.Equal(t, "library", a.Type)
	assert.Equal(t, "pkg:openwrt/a@1.0", a.BOMRef)
	assert.Equal(t, a.BOMRef, a.PURL)
	assert.Equal(t, &domain.BOMEntity{Name: "OpenWrt Developers"}, a.Supplier)
	assert.Equal(t, []domain.BOMLicense{
		{License: domain.BOMLicenseName{Name: "GPL-2.0"}},
		{License: domain.BOMLicenseName{Name: "MIT"}},
	}, a.Licenses)
	assert.Equal(t, []domain.BOMHash{{Algorithm: "SHA-256", Content: "abc"}}, a.Hashes)
	assert.Equal(t, []domain.BOMExternalRef{{Type: "distribution", URL: "https://example.org/a-1.0.tar.gz"}}, a.ExternalReferences)
	assert.Equal(t, []domain.BOMProperty{{Name: "openwrt:architecture", Value: "mips_24kc"}}, a.Properties)
	assert.Equal(t, "pkg:openwrt/b@2.0", bom.Components[1].BOMRef)
	assert.Equal(t, "pkg:openwrt/c@3.0", bom.Components[2].BOMRef)

	assert.Equal(t, []domain.BOMDependency{
		{Ref: "pkg:generic/openwrt-ath79-generic@23.05.2", DependsOn: []string{"pkg:openwrt/a@1.0"}},
		{Ref: "pkg:openwrt/a@1.0", DependsOn: []string{"pkg:openwrt/b@2.0"}},
		{Ref: "pkg:openwrt/b@2.0", DependsOn: []string{"pkg:openwrt/c@3.0"}},
	}, bom.Dependencies)
}

func TestSerializer_AbsentFieldsAreExplicit(t *testing.T) {
	s := cyclonedx.NewSerializer(func() time.Time { return fixed })
	bom, err := s.Serialize(chain(t), domain.ToolInfo{})
	require.NoError(t, err)

	data, err := json.Marshal(bom.Components[1])
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"supplier", "cpe"} {
		v, ok := raw[key]
		assert.True(t, ok, "%s must be present", key)
		assert.Nil(t, v, "%s must be null", key)
	}
	for _, key := range []string{"hashes", "externalReferences", "properties"} {
		assert.Equal(t, []any{}, raw[key], "%s must be an empty list", key)
	}
	assert.Equal(t, []any{map[string]any{"license": map[string]any{"name": "unspecified"}}}, raw["licenses"])
}

func TestSerializer_SerialNumberIsContentDerived(t *testing.T) {
	first, err := cyclonedx.NewSerializer(func() time.Time { return fixed }).Serialize(chain(t), domain.ToolInfo{})
	require.NoError(t, err)
	second, err := cyclonedx.NewSerializer(func() time.Time { return fixed.Add(time.Hour) }).Serialize(chain(t), domain.ToolInfo{})
	require.NoError(t, err)

	assert.Equal(t, first.SerialNumber, second.SerialNumber)
	assert.NotEqual(t, first.Metadata.Timestamp, second.Metadata.Timestamp)

	other, err := cyclonedx.NewSerializer(func() time.Time { return fixed }).Serialize(chain(t), domain.ToolInfo{Version: "1.0.0"})
	require.NoError(t, err)
	assert.NotEqual(t, first.SerialNumber, other.SerialNumber)
}

func TestSerializer_RequiresRoot(t *testing.T) {
	g := domain.NewComponentGraph()
	g.Finalize()

	_, err := cyclonedx.NewSerializer(nil).Serialize(g, domain.ToolInfo{})
	assert.Error(t, err)
}
