// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/csspipe/internal/adapters/cas"
	_ "go.trai.ch/csspipe/internal/adapters/config"
	_ "go.trai.ch/csspipe/internal/adapters/detector"
	_ "go.trai.ch/csspipe/internal/adapters/fs"
	_ "go.trai.ch/csspipe/internal/adapters/inprocess"
	_ "go.trai.ch/csspipe/internal/adapters/locking"
	_ "go.trai.ch/csspipe/internal/adapters/logger"
	_ "go.trai.ch/csspipe/internal/adapters/memcache"
	_ "go.trai.ch/csspipe/internal/adapters/metrics"
	_ "go.trai.ch/csspipe/internal/adapters/processor"
	_ "go.trai.ch/csspipe/internal/adapters/shell"
	_ "go.trai.ch/csspipe/internal/adapters/telemetry"
	_ "go.trai.ch/csspipe/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/csspipe/internal/adapters/worker"
	// Register app and engine nodes.
	_ "go.trai.ch/csspipe/internal/app"
	_ "go.trai.ch/csspipe/internal/engine/pipeline"
)
