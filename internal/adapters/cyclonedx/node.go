package cyclonedx

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwbom/internal/core/ports"
)

// NodeID is the unique identifier for the serializer node.
const NodeID graft.ID = "adapter.cyclonedx.serializer"

func init() {
	graft.Register(graft.Node[ports.Serializer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Serializer, error) {
			return NewSerializer(time.Now), nil
		},
	})
}
