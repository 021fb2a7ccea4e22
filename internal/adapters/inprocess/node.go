package inprocess

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/processor"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the in-process dispatcher Graft node.
const NodeID graft.ID = "adapter.dispatcher.inprocess"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{processor.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			factory, err := graft.Dep[ports.ProcessorFactory](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(factory), nil
		},
	})
}
