// Package domain contains the core domain models of the firmware component inventory.
package domain

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ComponentGraph is the in-memory inventory of one build target: components keyed by
// identifier, the dependency edges between them and a synthetic firmware root.
//
// Records are merged first, then edges are added, then Finalize attaches the root.
type ComponentGraph struct {
	nodes  map[InternedString]*ComponentRecord
	byName map[string]InternedString
	edges  map[DependencyEdge]struct{}

	root     *ComponentRecord
	rootDeps []InternedString
	adj      map[InternedString][]InternedString
	ids      []InternedString
}

// NewComponentGraph creates an empty ComponentGraph.
func NewComponentGraph() *ComponentGraph {
	return &ComponentGraph{
		nodes:  make(map[InternedString]*ComponentRecord),
		byName: make(map[string]InternedString),
		edges:  make(map[DependencyEdge]struct{}),
	}
}

// Merge adds rec to the graph, or folds it into the record already holding its name.
// The first record seen wins: a later duplicate only fills fields the first one is missing.
// A later duplicate with a different known version is rejected and reported.
func (g *ComponentGraph) Merge(rec *ComponentRecord) *Warning {
	id, exists := g.byName[rec.Name]
	if !exists {
		stored := *rec
		if stored.ID.IsZero() {
			stored.Rekey()
		}
		g.nodes[stored.ID] = &stored
		g.byName[stored.Name] = stored.ID
		g.invalidate()
		return nil
	}

	cur := g.nodes[id]
	if cur.HasVersion() && rec.HasVersion() && cur.Version != rec.Version {
		return &Warning{
			Kind:    WarningMergeConflict,
			Package: rec.Name,
			Field:   "version",
			Detail: fmt.Sprintf("version %q from %s#%d conflicts with %q from %s#%d, keeping the first",
				rec.Version, rec.Source.Index, rec.Source.Ordinal,
				cur.Version, cur.Source.Index, cur.Source.Ordinal),
		}
	}

	if !cur.HasVersion() && rec.HasVersion() {
		delete(g.nodes, cur.ID)
		cur.Version = rec.Version
		cur.Rekey()
		g.nodes[cur.ID] = cur
		g.byName[cur.Name] = cur.ID
	}
	cur.FillFrom(rec)
	g.invalidate()
	return nil
}

// AddEdge records a dependency between two components already in the graph.
// Self-loops and edges with an unknown endpoint are dropped and reported.
func (g *ComponentGraph) AddEdge(e DependencyEdge) *Warning {
	consumer, ok := g.nodes[e.Consumer]
	if !ok {
		return &Warning{
			Kind:    WarningEdgeResolution,
			Package: e.Consumer.String(),
			Field:   "consumer",
			Detail:  "edge from unknown component dropped",
		}
	}
	if _, ok := g.nodes[e.Dependency]; !ok {
		return &Warning{
			Kind:    WarningEdgeResolution,
			Package: consumer.Name,
			Field:   "depends",
			Detail:  fmt.Sprintf("edge to unknown component %s dropped", e.Dependency),
		}
	}
	if e.Consumer == e.Dependency {
		return &Warning{
			Kind:    WarningEdgeResolution,
			Package: consumer.Name,
			Field:   "depends",
			Detail:  "self-dependency dropped",
		}
	}
	g.edges[e] = struct{}{}
	g.invalidate()
	return nil
}

// SetRoot installs the synthetic firmware root.
func (g *ComponentGraph) SetRoot(root *ComponentRecord) {
	r := *root
	g.root = &r
	g.invalidate()
}

// Root returns the synthetic firmware root, or nil before SetRoot.
func (g *ComponentGraph) Root() *ComponentRecord {
	return g.root
}

// Len returns the number of components, the root excluded.
func (g *ComponentGraph) Len() int {
	return len(g.nodes)
}

// Lookup returns the component stored under id.
func (g *ComponentGraph) Lookup(id InternedString) (ComponentRecord, bool) {
	rec, ok := g.nodes[id]
	if !ok {
		return ComponentRecord{}, false
	}
	return *rec, true
}

// LookupName returns the component holding name.
func (g *ComponentGraph) LookupName(name string) (ComponentRecord, bool) {
	id, ok := g.byName[name]
	if !ok {
		return ComponentRecord{}, false
	}
	return g.Lookup(id)
}

// Finalize connects the root and orders components and edges.
// The root depends on every component nothing else depends on. Components that are
// still unreachable afterwards sit on dependency cycles; the root is connected to the
// smallest unreached identifier until everything is reachable.
func (g *ComponentGraph) Finalize() {
	g.ids = slices.SortedFunc(maps.Keys(g.nodes), InternedString.Compare)
	ordered := slices.SortedFunc(maps.Keys(g.edges), DependencyEdge.Compare)

	g.adj = make(map[InternedString][]InternedString, len(g.nodes))
	incoming := make(map[InternedString]bool, len(g.nodes))
	for _, e := range ordered {
		g.adj[e.Consumer] = append(g.adj[e.Consumer], e.Dependency)
		incoming[e.Dependency] = true
	}

	g.rootDeps = g.rootDeps[:0]
	for _, id := range g.ids {
		if !incoming[id] {
			g.rootDeps = append(g.rootDeps, id)
		}
	}

	reached := make(map[InternedString]bool, len(g.nodes))
	for _, id := range g.rootDeps {
		g.reach(id, reached)
	}
	for _, id := range g.ids {
		if reached[id] {
			continue
		}
		g.rootDeps = append(g.rootDeps, id)
		g.reach(id, reached)
	}
	slices.SortFunc(g.rootDeps, InternedString.Compare)
}

func (g *ComponentGraph) reach(start InternedString, reached map[InternedString]bool) {
	stack := []InternedString{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[id] {
			continue
		}
		reached[id] = true
		stack = append(stack, g.adj[id]...)
	}
}

// Components yields every component ordered by identifier. Finalize must have been called.
func (g *ComponentGraph) Components() iter.Seq[ComponentRecord] {
	return func(yield func(ComponentRecord) bool) {
		for _, id := range g.ids {
			if !yield(*g.nodes[id]) {
				return
			}
		}
	}
}

// DependenciesOf returns the sorted dependencies of id. Finalize must have been called.
func (g *ComponentGraph) DependenciesOf(id InternedString) []InternedString {
	return slices.Clone(g.adj[id])
}

// RootDependencies returns the sorted components the root depends on. Finalize must have been called.
func (g *ComponentGraph) RootDependencies() []InternedString {
	return slices.Clone(g.rootDeps)
}

// Unordered yields every component in map order, for passes that do not depend on ordering.
func (g *ComponentGraph) Unordered() iter.Seq[ComponentRecord] {
	return func(yield func(ComponentRecord) bool) {
		for _, rec := range g.nodes {
			if !yield(*rec) {
				return
			}
		}
	}
}

func (g *ComponentGraph) invalidate() {
	g.ids = nil
	g.adj = nil
}
