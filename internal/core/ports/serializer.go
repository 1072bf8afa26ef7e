package ports

import "go.trai.ch/fwbom/internal/core/domain"

// Serializer turns a finalized component graph into an SBOM document.
//
//go:generate mockgen -source=serializer.go -destination=mocks/mock_serializer.go -package=mocks
type Serializer interface {
	Serialize(g *domain.ComponentGraph, tool domain.ToolInfo) (*domain.BOM, error)
}
