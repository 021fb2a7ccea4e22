package locking

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the cross-process key locker Graft node.
const NodeID graft.ID = "adapter.locking"

func init() {
	graft.Register(graft.Node[ports.KeyLocker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyLocker, error) {
			return NewFlockGroup(), nil
		},
	})
}
