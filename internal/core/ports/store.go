package ports

import "go.trai.ch/fwbom/internal/core/domain"

// DocumentStore persists the artifacts of a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DocumentStore interface {
	// WriteBOM writes the document to path and returns the path written.
	// The path "-" selects standard output.
	WriteBOM(path string, bom *domain.BOM) (string, error)

	// WriteMissingCPE writes the sorted list of packages lacking a CPE identifier.
	WriteMissingCPE(path string, names []string) (string, error)
}
