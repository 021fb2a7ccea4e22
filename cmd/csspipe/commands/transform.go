package commands

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/zerr"
)

var errOutputNeedsSingleInput = zerr.New("--output requires exactly one input")

func (c *CLI) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Transform stylesheets, reading stdin when no file is given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts, err := c.resolveOptions(cmd)
			if err != nil {
				return err
			}

			if stats, _ := cmd.Flags().GetBool("stats"); stats && c.stats != nil {
				defer func() {
					err = errors.Join(err, c.stats.WriteSummary(cmd.ErrOrStderr()))
				}()
			}

			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				return c.transform(cmd, args, opts, cmd.OutOrStdout())
			}
			if len(args) != 1 || args[0] == "-" {
				return errOutputNeedsSingleInput
			}

			// The file is only touched once the transform has succeeded.
			var buf bytes.Buffer
			if err := c.transform(cmd, args, opts, &buf); err != nil {
				return err
			}
			if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write output file"), "path", path)
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the config file (default: "+domain.ConfigFileName+" if present)")
	cmd.Flags().String("cache-dir", "", "Enable the disk cache in this directory")
	cmd.Flags().Bool("cache-mem", false, "Enable the in-memory cache")
	cmd.Flags().Bool("in-process", false, "Run the toolchain in this process instead of a worker")
	cmd.Flags().String("consumer", "", "Consumer identity for the memory cache (default: each input path)")
	cmd.Flags().Duration("timeout", 0, "Kill the worker after this long (0 = no limit)")
	cmd.Flags().Bool("stats", false, "Print cache and latency statistics to stderr")
	cmd.Flags().StringP("output", "o", "", "Write the output to this file (single input only)")

	return cmd
}

func (c *CLI) transform(cmd *cobra.Command, args []string, opts domain.Options, out io.Writer) error {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return c.app.TransformReader(cmd.Context(), cmd.InOrStdin(), opts, out)
	}
	return c.app.TransformFiles(cmd.Context(), args, opts, out)
}

// resolveOptions loads the config file and applies the flags the user set on top.
func (c *CLI) resolveOptions(cmd *cobra.Command) (domain.Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to determine working directory")
	}

	configPath, _ := cmd.Flags().GetString("config")
	opts, err := c.app.LoadOptions(wd, configPath)
	if err != nil {
		return domain.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		opts.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("cache-mem") {
		opts.CacheMem, _ = flags.GetBool("cache-mem")
	}
	if flags.Changed("in-process") {
		opts.InProcess, _ = flags.GetBool("in-process")
	}
	if flags.Changed("consumer") {
		opts.ConsumerID, _ = flags.GetString("consumer")
	}
	if flags.Changed("timeout") {
		opts.Timeout, _ = flags.GetDuration("timeout")
	}

	return opts, nil
}
