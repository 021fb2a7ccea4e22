// Package inprocess implements the synchronous in-process dispatch strategy.
package inprocess

import (
	"context"
	"errors"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.Dispatcher = (*Dispatcher)(nil)

// Dispatcher runs the processor chain inside the calling process. The chain runs on
// its own goroutine; Dispatch blocks until it finishes or ctx is done.
type Dispatcher struct {
	factory ports.ProcessorFactory
}

// NewDispatcher creates a new in-process Dispatcher.
func NewDispatcher(factory ports.ProcessorFactory) *Dispatcher {
	return &Dispatcher{factory: factory}
}

type outcome struct {
	res domain.Result
	err error
}

// Dispatch transforms css with the chain described by opts.Settings.
func (d *Dispatcher) Dispatch(ctx context.Context, css string, opts domain.Options) (domain.Result, error) {
	proc, err := d.factory.Build(opts.Settings)
	if err != nil {
		// Configuration errors are transform failures, as they are when a worker reports them.
		return domain.Result{}, errors.Join(domain.ErrTransformFailed, err)
	}

	done := make(chan outcome, 1)
	go func() {
		res, err := proc.Process(ctx, css)
		done <- outcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	}
}
