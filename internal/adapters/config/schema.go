package config

// Configfile represents the structure of the fwbom.yaml configuration file.
type Configfile struct {
	Ecosystem         string    `yaml:"ecosystem"`
	LicenseDelimiters []string  `yaml:"license_delimiters"`
	Workers           int       `yaml:"workers"`
	MaxArtifactSize   int64     `yaml:"max_artifact_size"`
	CacheSize         int       `yaml:"cache_size"`
	Retry             *RetryDTO `yaml:"retry"`
	IndexNames        []string  `yaml:"index_names"`
	InstalledOnly     bool      `yaml:"installed_only"`
	Exclude           []string  `yaml:"exclude"`
	ExcludeFile       string    `yaml:"exclude_file"`
	CPE               CPEDTO    `yaml:"cpe"`
	Root              RootDTO   `yaml:"root"`
}

// RetryDTO represents the retry policy for artifact and index reads.
type RetryDTO struct {
	Attempts int    `yaml:"attempts"`
	Backoff  string `yaml:"backoff"`
}

// CPEDTO represents CPE override and enforcement settings.
type CPEDTO struct {
	OverridesFile string            `yaml:"overrides_file"`
	Overrides     map[string]string `yaml:"overrides"`
	Require       bool              `yaml:"require"`
	Ignore        []string          `yaml:"ignore"`
	IgnoreFile    string            `yaml:"ignore_file"`
}

// RootDTO represents the firmware root component settings.
type RootDTO struct {
	Name     string `yaml:"name"`
	Supplier string `yaml:"supplier"`
}
