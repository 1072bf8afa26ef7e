package domain

import (
	"slices"
	"strings"
)

// DefaultLicenseDelimiters separate license tokens when no configuration overrides them.
var DefaultLicenseDelimiters = []string{",", "|", " "}

// SplitLicenses splits a raw license declaration into a sorted set of tokens.
// Longer delimiters are applied first so that multi-character separators win over their parts.
// An empty result yields the single token UnspecifiedLicense.
func SplitLicenses(raw string, delimiters []string) []string {
	if len(delimiters) == 0 {
		delimiters = DefaultLicenseDelimiters
	}

	ordered := slices.Clone(delimiters)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return len(b) - len(a)
	})

	const sep = "\x00"
	for _, d := range ordered {
		if d == "" {
			continue
		}
		raw = strings.ReplaceAll(raw, d, sep)
	}

	var out []string
	for _, tok := range strings.Split(raw, sep) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return []string{UnspecifiedLicense}
	}

	slices.Sort(out)
	return slices.Compact(out)
}
