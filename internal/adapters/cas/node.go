package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recheck/internal/core/ports"
)

// NodeID is the unique identifier for the result store opener Graft node.
const NodeID graft.ID = "adapter.result_store"

func init() {
	graft.Register(graft.Node[ports.ResultStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResultStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
