package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/processor"          //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/csspipe/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			pipeline.NodeID,
			processor.NodeID,
			progrock.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ProcessorFactory](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, pipe, factory, progress, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     app,
		Logger:  log,
		Metrics: m,
		Tracer:  tracer,
	}, nil
}
