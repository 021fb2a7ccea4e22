package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csspipe/cmd/csspipe/commands"
	"go.trai.ch/csspipe/internal/build"
	"go.trai.ch/csspipe/internal/core/domain"
)

type mockApp struct {
	fileOpts   domain.Options
	loadErr    error
	readerFunc func(ctx context.Context, r io.Reader, opts domain.Options, w io.Writer) error
	filesFunc  func(ctx context.Context, inputs []string, opts domain.Options, w io.Writer) error
	workerCode int
}

func (m *mockApp) LoadOptions(_, _ string) (domain.Options, error) {
	return m.fileOpts, m.loadErr
}

func (m *mockApp) TransformReader(ctx context.Context, r io.Reader, opts domain.Options, w io.Writer) error {
	if m.readerFunc != nil {
		return m.readerFunc(ctx, r, opts, w)
	}
	return nil
}

func (m *mockApp) TransformFiles(ctx context.Context, inputs []string, opts domain.Options, w io.Writer) error {
	if m.filesFunc != nil {
		return m.filesFunc(ctx, inputs, opts, w)
	}
	return nil
}

func (m *mockApp) ServeWorker(_ context.Context, _ io.Reader, _, _ io.Writer) int {
	return m.workerCode
}

type stubStats struct{ calls int }

func (s *stubStats) WriteSummary(w io.Writer) error {
	s.calls++
	_, err := io.WriteString(w, "stats\n")
	return err
}

func TestCommands_Transform(t *testing.T) {
	t.Run("flags override config file", func(t *testing.T) {
		var captured domain.Options
		var capturedInputs []string

		mock := &mockApp{
			fileOpts: domain.Options{CacheDir: "/from/file", Settings: map[string]any{"plugins": []any{}}},
			filesFunc: func(_ context.Context, inputs []string, opts domain.Options, _ io.Writer) error {
				captured = opts
				capturedInputs = inputs
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{
			"transform", "a.css", "styles/",
			"--cache-mem", "--in-process", "--consumer", "page.js", "--timeout", "5s",
		})

		require.NoError(t, cli.Execute(t.Context()))
		assert.Equal(t, []string{"a.css", "styles/"}, capturedInputs)
		assert.Equal(t, "/from/file", captured.CacheDir)
		assert.True(t, captured.CacheMem)
		assert.True(t, captured.InProcess)
		assert.Equal(t, "page.js", captured.ConsumerID)
		assert.Equal(t, 5*time.Second, captured.Timeout)
		assert.Contains(t, captured.Settings, "plugins")
	})

	t.Run("reads stdin without inputs", func(t *testing.T) {
		mock := &mockApp{
			readerFunc: func(_ context.Context, r io.Reader, _ domain.Options, w io.Writer) error {
				data, err := io.ReadAll(r)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, strings.ToUpper(string(data)))
				return err
			},
		}

		for _, args := range [][]string{{"transform"}, {"transform", "-"}} {
			cli := commands.New(mock)
			out := new(bytes.Buffer)
			cli.SetOutput(out, new(bytes.Buffer))
			cli.SetInput(strings.NewReader("a{}"))
			cli.SetArgs(args)

			require.NoError(t, cli.Execute(t.Context()))
			assert.Equal(t, "A{}", out.String())
		}
	})

	t.Run("writes to output file", func(t *testing.T) {
		mock := &mockApp{
			filesFunc: func(_ context.Context, _ []string, _ domain.Options, w io.Writer) error {
				_, err := io.WriteString(w, "b{}")
				return err
			},
		}
		target := filepath.Join(t.TempDir(), "out.css")

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"transform", "b.css", "-o", target})

		require.NoError(t, cli.Execute(t.Context()))
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "b{}", string(data))
	})

	t.Run("failed transform leaves output file untouched", func(t *testing.T) {
		mock := &mockApp{
			filesFunc: func(_ context.Context, _ []string, _ domain.Options, w io.Writer) error {
				_, _ = io.WriteString(w, "partial")
				return domain.ErrTransformFailed
			},
		}
		dir := t.TempDir()
		existing := filepath.Join(dir, "kept.css")
		require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))
		missing := filepath.Join(dir, "new.css")

		for _, target := range []string{existing, missing} {
			cli := commands.New(mock)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			cli.SetArgs([]string{"transform", "b.css", "-o", target})

			require.ErrorIs(t, cli.Execute(t.Context()), domain.ErrTransformFailed)
		}

		data, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
		assert.NoFileExists(t, missing)
	})

	t.Run("output needs a single input", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"transform", "a.css", "b.css", "--output", filepath.Join(t.TempDir(), "x.css")})

		err := cli.Execute(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output")
	})

	t.Run("config errors surface", func(t *testing.T) {
		cli := commands.New(&mockApp{loadErr: domain.ErrConfigParseFailed})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"transform", "-c", "broken.yaml"})

		require.ErrorIs(t, cli.Execute(t.Context()), domain.ErrConfigParseFailed)
	})

	t.Run("stats are printed even on failure", func(t *testing.T) {
		stats := &stubStats{}
		mock := &mockApp{
			filesFunc: func(_ context.Context, _ []string, _ domain.Options, _ io.Writer) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, commands.WithStats(stats))
		errBuf := new(bytes.Buffer)
		cli.SetOutput(new(bytes.Buffer), errBuf)
		cli.SetArgs([]string{"transform", "a.css", "--stats"})

		err := cli.Execute(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
		assert.Equal(t, 1, stats.calls)
		assert.Equal(t, "stats\n", errBuf.String())
	})
}

func TestCommands_Worker(t *testing.T) {
	cli := commands.New(&mockApp{workerCode: 0})
	cli.SetArgs([]string{"worker"})
	require.NoError(t, cli.Execute(t.Context()))

	cli = commands.New(&mockApp{workerCode: 1})
	cli.SetArgs([]string{"worker"})
	require.ErrorIs(t, cli.Execute(t.Context()), commands.ErrWorkerExit)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, buf.String(), "csspipe version "+build.Version)
}
