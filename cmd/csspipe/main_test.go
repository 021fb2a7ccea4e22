package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csspipe/internal/app"
)

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		args         []string
		expectedOut  string
		expectedExit int
	}{
		{
			name:         "transform in process",
			config:       "plugins:\n  - compact: {}\n",
			args:         []string{"transform", "--in-process", "style.css"},
			expectedOut:  "a{color:red;}",
			expectedExit: 0,
		},
		{
			name:         "transform with disk cache",
			config:       "cache:\n  dir: .cache\ninProcess: true\nplugins:\n  - compact: {}\n",
			args:         []string{"transform", "style.css"},
			expectedOut:  "a{color:red;}",
			expectedExit: 0,
		},
		{
			name:         "unknown plugin",
			config:       "plugins:\n  - nope: {}\n",
			args:         []string{"transform", "--in-process", "style.css"},
			expectedExit: 1,
		},
		{
			name:         "broken config",
			config:       "plugins: [\n",
			args:         []string{"transform", "--in-process", "style.css"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "csspipe.yaml"), []byte(tt.config), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "style.css"), []byte("a {\n  color: red;\n}\n"), 0o600))
			t.Chdir(tmpDir)

			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)
			exitCode := run(t.Context(), append(tt.args, "--log-format", "json"), stdout, stderr, graftProvider)

			assert.Equal(t, tt.expectedExit, exitCode, stderr.String())
			if tt.expectedExit == 0 {
				assert.Contains(t, stdout.String(), tt.expectedOut)
			} else {
				assert.Contains(t, stderr.String(), "operation failed")
			}
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, new(bytes.Buffer), stderr,
		func(context.Context) (*app.Components, func(), error) {
			return nil, nil, errors.New("wiring failed")
		})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

func TestRun_Version(t *testing.T) {
	stdout := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, stdout, new(bytes.Buffer), graftProvider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "csspipe version")
}
