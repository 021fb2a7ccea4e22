package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/inprocess" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/locking"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/memcache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/adapters/worker"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csspipe/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			memcache.NodeID,
			cas.NodeID,
			locking.NodeID,
			inprocess.NodeID,
			worker.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			memory, err := graft.Dep[ports.MemoryCache](ctx)
			if err != nil {
				return nil, err
			}

			disk, err := graft.Dep[ports.DiskCache](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.KeyLocker](ctx)
			if err != nil {
				return nil, err
			}

			inProcess, err := graft.Dep[*inprocess.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			subprocess, err := graft.Dep[*worker.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return New(hasher, memory, disk, locker, inProcess, subprocess, log, tracer, m), nil
		},
	})
}
