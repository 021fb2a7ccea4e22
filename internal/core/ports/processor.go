// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/csspipe/internal/core/domain"
)

// Processor is the CSS toolchain: CSS text in, transformed CSS text and an optional warning out.
//
//go:generate go run go.uber.org/mock/mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks
type Processor interface {
	// Process transforms the given CSS. A failure means the toolchain rejected the input or its configuration.
	Process(ctx context.Context, css string) (domain.Result, error)
}

// ProcessorFactory builds a Processor from passthrough settings.
type ProcessorFactory interface {
	// Build returns the processor described by settings. Unknown or malformed plugins are errors.
	Build(settings map[string]any) (Processor, error)
}
