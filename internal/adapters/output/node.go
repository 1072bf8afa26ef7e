package output

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwbom/internal/core/ports"
)

// NodeID is the unique identifier for the document store node.
const NodeID graft.ID = "adapter.output.store"

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewStore(os.Stdout), nil
		},
	})
}
