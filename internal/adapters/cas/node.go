package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the disk tier Graft node.
const NodeID graft.ID = "adapter.disk_cache"

func init() {
	graft.Register(graft.Node[ports.DiskCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DiskCache, error) {
			return NewStore(), nil
		},
	})
}
