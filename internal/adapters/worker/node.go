package worker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/detector"
	"go.trai.ch/csspipe/internal/adapters/logger"
	"go.trai.ch/csspipe/internal/adapters/shell"
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the subprocess dispatcher Graft node.
const NodeID graft.ID = "adapter.dispatcher.worker"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, detector.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			det, err := graft.Dep[ports.FrameworkDetector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDispatcher(executor, det, log)
		},
	})
}
