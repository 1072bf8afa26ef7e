package opkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwbom/internal/adapters/fs"
	"go.trai.ch/fwbom/internal/core/ports"
)

// NodeID is the unique identifier for the package source node.
const NodeID graft.ID = "adapter.opkg.source"

func init() {
	graft.Register(graft.Node[ports.PackageSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.PackageSource, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(walker), nil
		},
	})
}
