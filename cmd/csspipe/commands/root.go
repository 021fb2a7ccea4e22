// Package commands implements the CLI commands for csspipe.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/csspipe/internal/adapters/detector"
	"go.trai.ch/csspipe/internal/adapters/telemetry"
	"go.trai.ch/csspipe/internal/app"
	"go.trai.ch/csspipe/internal/build"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
)

// Application represents the application logic the commands drive.
type Application interface {
	LoadOptions(dir, path string) (domain.Options, error)
	TransformReader(ctx context.Context, r io.Reader, opts domain.Options, w io.Writer) error
	TransformFiles(ctx context.Context, inputs []string, opts domain.Options, w io.Writer) error
	ServeWorker(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int
}

// CLI represents the command line interface for csspipe.
type CLI struct {
	app     Application
	logger  ports.Logger
	stats   app.SummaryWriter
	rootCmd *cobra.Command

	tracerProvider *trace.TracerProvider
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogger sets the logger that --log-format and --trace act on.
func WithLogger(l ports.Logger) Option {
	return func(c *CLI) {
		c.logger = l
	}
}

// WithStats sets the metrics summary printed by --stats.
func WithStats(s app.SummaryWriter) Option {
	return func(c *CLI) {
		c.stats = s
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "csspipe",
		Short:         "Run CSS through a configurable transform pipeline with result caching",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty or json")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every finished trace span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRunE = c.configureOutput
	rootCmd.PersistentPostRunE = c.shutdownTracing

	rootCmd.AddCommand(c.newTransformCmd())
	rootCmd.AddCommand(c.newWorkerCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func (c *CLI) configureOutput(cmd *cobra.Command, _ []string) error {
	if c.logger == nil {
		return nil
	}

	if configurer, ok := c.logger.(app.OutputConfigurer); ok {
		userFlag, _ := cmd.Flags().GetString("log-format")
		format := detector.ResolveLogFormat(detector.DetectLogFormat(), userFlag)
		configurer.SetJSON(format == detector.FormatJSON)
	}

	if enabled, _ := cmd.Flags().GetBool("trace"); enabled {
		c.tracerProvider = telemetry.Install(telemetry.NewLogBridge(c.logger))
	}
	return nil
}

func (c *CLI) shutdownTracing(cmd *cobra.Command, _ []string) error {
	if c.tracerProvider == nil {
		return nil
	}
	return c.tracerProvider.Shutdown(cmd.Context())
}
