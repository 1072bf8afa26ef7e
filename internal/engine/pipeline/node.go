package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwbom/internal/adapters/cyclonedx"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwbom/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwbom/internal/adapters/opkg"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwbom/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwbom/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			opkg.NodeID,
			fs.HasherNodeID,
			cyclonedx.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			source, err := graft.Dep[ports.PackageSource](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			serializer, err := graft.Dep[ports.Serializer](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, hasher, serializer, telemetry, newDigestCache), nil
		},
	})
}

func newDigestCache(size int) (ports.DigestCache, error) {
	return fs.NewDigestCache(size)
}
