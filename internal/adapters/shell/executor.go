// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command with its stdin attached and both output streams captured.
// The environment is the process environment overlaid with cmd.Env; the program is
// resolved through the resulting PATH.
func (e *Executor) Execute(ctx context.Context, command domain.Command) (domain.CommandResult, error) {
	if len(command.Args) == 0 {
		return domain.CommandResult{ExitCode: -1}, domain.ErrEmptyCommand
	}

	name := command.Args[0]
	args := command.Args[1:]

	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command

	// Keep the name as invoked rather than the resolved path.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if command.Dir != "" {
		cmd.Dir = command.Dir
	}

	cmd.Env = cmdEnv

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(command.Stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return domain.CommandResult{ExitCode: -1}, errors.Join(
			domain.ErrCommandStartFailed,
			zerr.With(zerr.Wrap(err, "failed to start process"), "command", name),
		)
	}

	err := cmd.Wait()
	result := domain.CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", name)
		}
		return result, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", result.ExitCode)
	}

	return result, nil
}

// resolveEnvironment overlays overrides on the system environment. An overriding
// PATH is prepended to the system PATH. The result is sorted for stable output.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" && v != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
