package app

import (
	"io"

	"go.trai.ch/csspipe/internal/core/ports"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App     *App
	Logger  ports.Logger
	Metrics ports.Metrics
	Tracer  ports.Tracer
}

// SummaryWriter is implemented by metrics backends that can print a summary.
type SummaryWriter interface {
	WriteSummary(w io.Writer) error
}

// OutputConfigurer is implemented by loggers whose format and destination can change.
type OutputConfigurer interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}
