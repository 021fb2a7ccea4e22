// Package app implements the application layer for csspipe.
package app

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/spf13/afero"
	"go.trai.ch/csspipe/internal/adapters/worker"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader      ports.ConfigLoader
	resolver    ports.InputResolver
	transformer ports.Transformer
	factory     ports.ProcessorFactory
	progress    ports.Progress
	tracer      ports.Tracer
	logger      ports.Logger
	fs          afero.Fs
	parallelism int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	transformer ports.Transformer,
	factory ports.ProcessorFactory,
	progress ports.Progress,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		loader:      loader,
		resolver:    resolver,
		transformer: transformer,
		factory:     factory,
		progress:    progress,
		tracer:      tracer,
		logger:      logger,
		fs:          afero.NewOsFs(),
		parallelism: runtime.NumCPU(),
	}
}

// WithFs replaces the filesystem inputs are read from.
func (a *App) WithFs(fsys afero.Fs) *App {
	a.fs = fsys
	return a
}

// WithParallelism bounds how many files TransformFiles processes at once.
func (a *App) WithParallelism(n int) *App {
	if n > 0 {
		a.parallelism = n
	}
	return a
}

// LoadOptions reads the configuration file. An empty path selects csspipe.yaml in dir.
func (a *App) LoadOptions(dir, path string) (domain.Options, error) {
	opts, err := a.loader.Load(dir, path)
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}
	return opts, nil
}

// Transform runs css through the configured toolchain and returns the output CSS.
func (a *App) Transform(ctx context.Context, css string, opts domain.Options) (string, error) {
	out, err := a.transformer.Transform(ctx, domain.Request{CSS: css, Options: opts})
	if err != nil {
		return "", err
	}
	return out.CSS, nil
}

// TransformReader transforms everything read from r and writes the result to w.
func (a *App) TransformReader(ctx context.Context, r io.Reader, opts domain.Options, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(domain.ErrInputReadFailed, zerr.Wrap(err, "cannot read stdin"))
	}

	css, err := a.Transform(ctx, string(data), opts)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, css); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

// TransformFiles resolves inputs to stylesheet paths, transforms them concurrently
// and writes the outputs to w in input order. Each file is its own consumer unless
// opts names one. Nothing is written when any file fails.
func (a *App) TransformFiles(ctx context.Context, inputs []string, opts domain.Options, w io.Writer) error {
	paths, err := a.resolver.ResolveInputs(inputs, ".")
	if err != nil {
		return zerr.Wrap(err, "failed to resolve inputs")
	}

	ctx, span := a.tracer.Start(ctx, "batch", ports.WithAttribute("inputs", len(paths)))
	defer span.End()
	a.tracer.EmitPlan(ctx, paths)

	outputs := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)

	for i, path := range paths {
		g.Go(func() error {
			css, err := a.transformFile(ctx, path, opts)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to transform "+path), "path", path)
			}
			outputs[i] = css
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	for _, css := range outputs {
		if _, err := io.WriteString(w, css); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func (a *App) transformFile(ctx context.Context, path string, opts domain.Options) (css string, err error) {
	vertex := a.progress.Record(ctx, path)
	defer func() { vertex.Complete(err) }()

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", errors.Join(domain.ErrInputReadFailed, zerr.Wrap(err, "cannot read input"))
	}

	if opts.ConsumerID == "" {
		opts = opts.WithConsumer(path)
	}

	out, err := a.transformer.Transform(ctx, domain.Request{CSS: string(data), Options: opts})
	if err != nil {
		return "", err
	}

	if out.Cached() {
		vertex.Cached()
	}
	_, _ = io.WriteString(vertex.Stdout(), string(out.Source)+" "+out.Hash+"\n")
	return out.CSS, nil
}

// ServeWorker runs the worker side of the subprocess protocol and returns the exit code.
func (a *App) ServeWorker(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	return worker.Serve(ctx, stdin, stdout, stderr, a.factory)
}

// Close flushes progress recording.
func (a *App) Close() error {
	return a.progress.Close()
}
