package domain

const (
	// BOMFormat is the fixed format marker of the document.
	BOMFormat = "CycloneDX"
	// BOMSpecVersion is the CycloneDX schema version the document follows.
	BOMSpecVersion = "1.4"
	// ComponentTypeLibrary is the CycloneDX type of every package component.
	ComponentTypeLibrary = "library"
	// ComponentTypeFirmware is the CycloneDX type of the root component.
	ComponentTypeFirmware = "firmware"
	// ExternalRefDistribution is the reference type used for package provenance.
	ExternalRefDistribution = "distribution"
)

// BOM is a CycloneDX software bill of materials.
// Optional values are pointers or slices without omitempty so that absent values
// serialize as null or [] instead of disappearing.
type BOM struct {
	BOMFormat    string          `json:"bomFormat"`
	SpecVersion  string          `json:"specVersion"`
	SerialNumber string          `json:"serialNumber"`
	Version      int             `json:"version"`
	Metadata     BOMMetadata     `json:"metadata"`
	Components   []BOMComponent  `json:"components"`
	Dependencies []BOMDependency `json:"dependencies"`
}

// BOMMetadata describes the document and the firmware it inventories.
type BOMMetadata struct {
	Timestamp string       `json:"timestamp"`
	Tools     []BOMTool    `json:"tools"`
	Component BOMComponent `json:"component"`
}

// BOMTool describes the generator.
type BOMTool struct {
	Vendor  string `json:"vendor"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// BOMComponent is one inventoried component.
type BOMComponent struct {
	Type               string           `json:"type"`
	BOMRef             string           `json:"bom-ref"`
	Supplier           *BOMEntity       `json:"supplier"`
	Name               string           `json:"name"`
	Version            string           `json:"version"`
	Licenses           []BOMLicense     `json:"licenses"`
	Hashes             []BOMHash        `json:"hashes"`
	PURL               string           `json:"purl"`
	CPE                *string          `json:"cpe"`
	ExternalReferences []BOMExternalRef `json:"externalReferences"`
	Properties         []BOMProperty    `json:"properties"`
}

// BOMEntity names an organization or person.
type BOMEntity struct {
	Name string `json:"name"`
}

// BOMLicense wraps a license choice.
type BOMLicense struct {
	License BOMLicenseName `json:"license"`
}

// BOMLicenseName is a license identified by name.
type BOMLicenseName struct {
	Name string `json:"name"`
}

// BOMHash is a content digest.
type BOMHash struct {
	Algorithm string `json:"alg"`
	Content   string `json:"content"`
}

// BOMExternalRef points at where a component came from.
type BOMExternalRef struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// BOMProperty is a free-form name/value annotation.
type BOMProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BOMDependency lists what one component depends on.
type BOMDependency struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}
