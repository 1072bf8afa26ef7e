// Package cyclonedx serializes component graphs into CycloneDX 1.4 documents.
package cyclonedx

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

// PropertyArchitecture annotates a component with its target architecture.
const PropertyArchitecture = "openwrt:architecture"

var _ ports.Serializer = (*Serializer)(nil)

// Serializer implements ports.Serializer.
type Serializer struct {
	clock func() time.Time
}

// NewSerializer creates a Serializer that stamps documents with clock.
func NewSerializer(clock func() time.Time) *Serializer {
	if clock == nil {
		clock = time.Now
	}
	return &Serializer{clock: clock}
}

// Serialize builds the document for a finalized graph.
// The serial number is derived from the content, so unchanged inputs yield the same
// document apart from the timestamp.
func (s *Serializer) Serialize(g *domain.ComponentGraph, tool domain.ToolInfo) (*domain.BOM, error) {
	root := g.Root()
	if root == nil {
		return nil, zerr.New("component graph has no root")
	}

	bom := &domain.BOM{
		BOMFormat:   domain.BOMFormat,
		SpecVersion: domain.BOMSpecVersion,
		Version:     1,
		Metadata: domain.BOMMetadata{
			Tools:     []domain.BOMTool{{Vendor: tool.Vendor, Name: tool.Name, Version: tool.Version}},
			Component: component(root, domain.ComponentTypeFirmware),
		},
		Components:   make([]domain.BOMComponent, 0, g.Len()),
		Dependencies: make([]domain.BOMDependency, 0, g.Len()+1),
	}

	for rec := range g.Components() {
		bom.Components = append(bom.Components, component(&rec, domain.ComponentTypeLibrary))
	}

	bom.Dependencies = append(bom.Dependencies, dependency(root.ID, g.RootDependencies()))
	for rec := range g.Components() {
		if deps := g.DependenciesOf(rec.ID); len(deps) > 0 {
			bom.Dependencies = append(bom.Dependencies, dependency(rec.ID, deps))
		}
	}

	serial, err := serialNumber(bom)
	if err != nil {
		return nil, err
	}
	bom.SerialNumber = serial
	bom.Metadata.Timestamp = s.clock().UTC().Format(time.RFC3339)

	return bom, nil
}

func component(rec *domain.ComponentRecord, kind string) domain.BOMComponent {
	c := domain.BOMComponent{
		Type:               kind,
		BOMRef:             rec.ID.String(),
		Name:               rec.Name,
		Version:            rec.Version,
		Licenses:           make([]domain.BOMLicense, 0, len(rec.Licenses)),
		Hashes:             []domain.BOMHash{},
		PURL:               rec.ID.String(),
		CPE:                rec.CPE,
		ExternalReferences: []domain.BOMExternalRef{},
		Properties:         []domain.BOMProperty{},
	}

	if rec.Supplier != nil {
		c.Supplier = &domain.BOMEntity{Name: *rec.Supplier}
	}
	for _, l := range rec.Licenses {
		c.Licenses = append(c.Licenses, domain.BOMLicense{License: domain.BOMLicenseName{Name: l}})
	}
	if rec.Hash != nil {
		c.Hashes = append(c.Hashes, domain.BOMHash{Algorithm: rec.Hash.Algorithm, Content: rec.Hash.Value})
	}
	if rec.Origin != nil {
		c.ExternalReferences = append(c.ExternalReferences, domain.BOMExternalRef{
			Type: domain.ExternalRefDistribution,
			URL:  *rec.Origin,
		})
	}

	props := maps.Clone(rec.Properties)
	if rec.Architecture != nil {
		if props == nil {
			props = make(map[string]string, 1)
		}
		props[PropertyArchitecture] = *rec.Architecture
	}
	for _, k := range slices.Sorted(maps.Keys(props)) {
		c.Properties = append(c.Properties, domain.BOMProperty{Name: k, Value: props[k]})
	}

	return c
}

func dependency(ref domain.InternedString, deps []domain.InternedString) domain.BOMDependency {
	d := domain.BOMDependency{
		Ref:       ref.String(),
		DependsOn: make([]string, len(deps)),
	}
	for i, dep := range deps {
		d.DependsOn[i] = dep.String()
	}
	return d
}

// serialNumber hashes the document with serial number and timestamp still empty.
func serialNumber(bom *domain.BOM) (string, error) {
	data, err := json.Marshal(bom)
	if err != nil {
		return "", zerr.Wrap(err, "failed to fingerprint document")
	}
	fingerprint := fmt.Sprintf("%016x", xxhash.Sum64(data))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fingerprint)).URN(), nil
}
