package processor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/shell"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the processor factory Graft node.
const NodeID graft.ID = "adapter.processor"

func init() {
	graft.Register(graft.Node[ports.ProcessorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ProcessorFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor), nil
		},
	})
}
