package config

import (
	"os"
	"strings"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadPackageList reads package names separated by commas, whitespace or newlines.
// Surrounding brackets and quotes are ignored, so a JSON array works as well.
// Lines starting with '#' are comments.
func (l *Loader) LoadPackageList(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var names []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '[' || r == ']' || r == '"' || r == '\'' || r == ' ' || r == '\t'
		})
		names = append(names, fields...)
	}

	return sortedUnique(names), nil
}

// LoadCPEOverrides reads a mapping of package name to CPE identifier.
// The file may be JSON or YAML.
func (l *Loader) LoadCPEOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	for name, cpe := range overrides {
		if strings.TrimSpace(cpe) == "" {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "empty CPE override"), "path", path), "package", name)
		}
	}
	return overrides, nil
}
