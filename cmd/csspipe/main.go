// Package main is the entry point for csspipe.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/csspipe/cmd/csspipe/commands"
	"go.trai.ch/csspipe/internal/app"
	_ "go.trai.ch/csspipe/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.App.Close() }, nil
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if configurer, ok := components.Logger.(app.OutputConfigurer); ok {
		configurer.SetOutput(stderr)
	}

	opts := []commands.Option{commands.WithLogger(components.Logger)}
	if summary, ok := components.Metrics.(app.SummaryWriter); ok {
		opts = append(opts, commands.WithStats(summary))
	}

	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, commands.ErrWorkerExit) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
