// Package worker implements the subprocess dispatch strategy and the worker side
// of its stdin/stdout JSON protocol.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Dispatcher = (*Dispatcher)(nil)

// FrameworkPackage is the package whose presence turns a plugin-shape failure
// into ErrEnvironmentIncompatible.
const FrameworkPackage = "next"

// NextPluginShapeHint is logged when a plugin-shape failure happens inside a Next.js project.
const NextPluginShapeHint = "Next.js uses a non-standard CSS plugin configuration shape. " +
	"List plugins as single-key mappings (for example `- compact: {}`) instead of names or [name, options] tuples."

// Dispatcher runs each transform in a fresh worker process.
type Dispatcher struct {
	executor ports.Executor
	detector ports.FrameworkDetector
	logger   ports.Logger
	command  []string
	env      map[string]string
	newID    func() string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCommand replaces the worker command line.
func WithCommand(args ...string) Option {
	return func(d *Dispatcher) {
		d.command = args
	}
}

// DefaultCommand returns the command line that re-executes the running binary as a worker.
func DefaultCommand() ([]string, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return []string{exe, domain.WorkerCommand}, nil
}

// NewDispatcher creates a subprocess Dispatcher. Without WithCommand it spawns
// the running binary's worker subcommand.
func NewDispatcher(
	executor ports.Executor,
	detector ports.FrameworkDetector,
	logger ports.Logger,
	opts ...Option,
) (*Dispatcher, error) {
	d := &Dispatcher{
		executor: executor,
		detector: detector,
		logger:   logger,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}

	if len(d.command) == 0 {
		command, err := DefaultCommand()
		if err != nil {
			return nil, err
		}
		d.command = command
	}

	return d, nil
}

// Dispatch sends css and opts.Settings to a new worker and waits for its answer.
// opts.Timeout bounds the wait; expiry kills the worker.
func (d *Dispatcher) Dispatch(ctx context.Context, css string, opts domain.Options) (domain.Result, error) {
	req := domain.WorkerRequest{
		ID:       d.newID(),
		CSS:      css,
		Settings: opts.Settings,
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return domain.Result{}, errors.Join(domain.ErrWorkerProtocol, zerr.Wrap(err, "failed to encode worker request"))
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	res, err := d.executor.Execute(runCtx, domain.Command{
		Args:  d.command,
		Env:   d.env,
		Stdin: payload,
	})
	if err != nil {
		return domain.Result{}, d.classify(ctx, runCtx, opts, res, err)
	}

	var resp domain.WorkerResponse
	if err := json.Unmarshal(res.Stdout, &resp); err != nil {
		return domain.Result{}, errors.Join(
			domain.ErrWorkerProtocol,
			zerr.With(zerr.Wrap(err, "failed to decode worker response"), "request_id", req.ID),
		)
	}

	if resp.ID != req.ID {
		return domain.Result{}, errors.Join(
			domain.ErrWorkerProtocol,
			zerr.With(zerr.With(zerr.New("worker answered a different request"), "request_id", req.ID), "response_id", resp.ID),
		)
	}

	return resp.Result(), nil
}

// classify maps a failed worker run onto the domain errors.
func (d *Dispatcher) classify(
	parent, run context.Context,
	opts domain.Options,
	res domain.CommandResult,
	err error,
) error {
	if errors.Is(err, domain.ErrCommandStartFailed) {
		return errors.Join(domain.ErrWorkerSpawnFailed, err)
	}

	if parent.Err() != nil {
		return parent.Err()
	}

	if errors.Is(run.Err(), context.DeadlineExceeded) {
		return errors.Join(
			domain.ErrWorkerTimeout,
			zerr.With(zerr.New("worker killed after "+opts.Timeout.String()), "timeout", opts.Timeout.String()),
		)
	}

	diagnostic := strings.TrimSpace(string(res.Stderr))
	if diagnostic == "" {
		diagnostic = err.Error()
	}

	if strings.Contains(diagnostic, domain.InvalidPluginMarker) && d.detector.HasPackage(FrameworkPackage) {
		d.logger.Error(zerr.New(NextPluginShapeHint))
		return errors.Join(domain.ErrEnvironmentIncompatible, domain.NewTransformError(diagnostic))
	}

	return domain.NewTransformError(diagnostic)
}
