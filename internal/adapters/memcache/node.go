package memcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/metrics"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the memory tier Graft node.
const NodeID graft.ID = "adapter.memcache"

func init() {
	graft.Register(graft.Node[ports.MemoryCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{metrics.NodeID},
		Run: func(ctx context.Context) (ports.MemoryCache, error) {
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return New(WithEvictHook(func(_ string, dropped int) {
				m.MemoryCleared(dropped)
			})), nil
		},
	})
}
