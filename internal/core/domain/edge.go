package domain

// DependencyEdge records that Consumer requires Dependency at runtime.
type DependencyEdge struct {
	Consumer   InternedString
	Dependency InternedString
}

// Compare orders edges by consumer, then by dependency.
func (e DependencyEdge) Compare(other DependencyEdge) int {
	if c := e.Consumer.Compare(other.Consumer); c != 0 {
		return c
	}
	return e.Dependency.Compare(other.Dependency)
}
