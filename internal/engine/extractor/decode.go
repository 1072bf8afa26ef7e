package extractor

import (
	"strings"
	"unicode"

	"go.trai.ch/fwbom/internal/core/domain"
)

// originKeys are consulted in order; the first non-empty one is the package provenance.
var originKeys = []string{"URL", "Source", "SourceName", "Source-Makefile"}

// Decode turns a raw block into typed metadata. Empty values count as absent.
func Decode(block *domain.RawBlock) domain.PackageMetadata {
	return domain.PackageMetadata{
		Name:         field(block, "Package"),
		Version:      field(block, "Version"),
		License:      field(block, "License"),
		Origin:       firstField(block, originKeys...),
		Maintainer:   field(block, "Maintainer"),
		CPE:          field(block, "CPE-ID"),
		Architecture: field(block, "Architecture"),
		Filename:     field(block, "Filename"),
		Depends:      field(block, "Depends"),
	}
}

func field(block *domain.RawBlock, key string) *string {
	v, ok := block.Get(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func firstField(block *domain.RawBlock, keys ...string) *string {
	for _, key := range keys {
		if v := field(block, key); v != nil {
			return v
		}
	}
	return nil
}

// SplitDepends tokenizes a Depends field. Each token is one package name with any
// version constraint still attached, e.g. "libc", "+libgcc1", "zlib (>= 1.2)".
func SplitDepends(raw string) []string {
	var out []string
	for clause := range strings.SplitSeq(raw, ",") {
		// Alternatives separated by '|' each become a token of their own.
		fields := strings.FieldsFunc(clause, func(r rune) bool {
			return unicode.IsSpace(r) || r == '|'
		})
		for i := 0; i < len(fields); i++ {
			tok := fields[i]
			for i+1 < len(fields) && (startsConstraint(fields[i+1]) || openConstraint(tok)) {
				i++
				tok += " " + fields[i]
			}
			out = append(out, tok)
		}
	}
	return out
}

func startsConstraint(s string) bool {
	return strings.ContainsRune("(<>=!~", rune(s[0]))
}

func openConstraint(tok string) bool {
	if strings.Count(tok, "(") > strings.Count(tok, ")") {
		return true
	}
	return strings.ContainsRune("<>=!~", rune(tok[len(tok)-1]))
}
