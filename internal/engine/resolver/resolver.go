// Package resolver turns declared dependency tokens into edges between components.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/fwbom/internal/core/domain"
)

// constraintStart marks where a version constraint begins in a dependency token.
const constraintStart = " (<>=!~"

// BareName reduces a dependency token to the normalized package name it refers to.
// Kconfig symbols such as "@KERNEL_DEBUG_FS" yield the empty string.
func BareName(token string) string {
	return normalize(bare(token))
}

// bare strips prefixes, conditions and constraints from token but keeps its case.
func bare(token string) string {
	name := strings.TrimSpace(token)
	name = strings.TrimLeft(name, "+")
	if name == "" || strings.HasPrefix(name, "@") {
		return ""
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexAny(name, constraintStart); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve computes the dependency edges of every component in g, sorted and deduplicated.
// A token naming a component exactly resolves to it. Otherwise the case-folded name is
// looked up; a folded name shared by several components resolves to the smallest
// identifier with a warning. Tokens naming no component are dropped with a warning.
func Resolve(g *domain.ComponentGraph) ([]domain.DependencyEdge, []domain.Warning) {
	records := slices.SortedFunc(g.Unordered(), func(a, b domain.ComponentRecord) int {
		return a.ID.Compare(b.ID)
	})

	exact := make(map[string]domain.InternedString, len(records))
	folded := make(map[string][]domain.InternedString, len(records))
	for i := range records {
		exact[records[i].Name] = records[i].ID
		key := normalize(records[i].Name)
		folded[key] = append(folded[key], records[i].ID)
	}

	var (
		edges    []domain.DependencyEdge
		warnings []domain.Warning
		seen     = make(map[domain.DependencyEdge]struct{})
	)
	for i := range records {
		rec := &records[i]
		for _, token := range rec.Depends {
			name := bare(token)
			if name == "" {
				continue
			}

			candidates := folded[normalize(name)]
			if id, ok := exact[name]; ok {
				candidates = []domain.InternedString{id}
			}
			switch {
			case len(candidates) == 0:
				warnings = append(warnings, domain.Warning{
					Kind:    domain.WarningEdgeResolution,
					Package: rec.Name,
					Field:   "depends",
					Detail:  fmt.Sprintf("dependency %q not found among discovered packages", name),
				})
				continue
			case len(candidates) > 1:
				warnings = append(warnings, domain.Warning{
					Kind:    domain.WarningEdgeResolution,
					Package: rec.Name,
					Field:   "depends",
					Detail:  fmt.Sprintf("dependency %q is ambiguous, resolved to %s", name, candidates[0]),
				})
			}

			e := domain.DependencyEdge{Consumer: rec.ID, Dependency: candidates[0]}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}

	slices.SortFunc(edges, domain.DependencyEdge.Compare)
	return edges, warnings
}
