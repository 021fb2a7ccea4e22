package detector_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csspipe/internal/adapters/detector"
)

func TestNodePackageDetector_HasPackage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/repo/node_modules/next/package.json", []byte(`{"name":"next"}`), 0o644))
	require.NoError(t, fsys.MkdirAll("/repo/node_modules/empty", 0o755))
	require.NoError(t, fsys.MkdirAll("/repo/apps/web/src", 0o755))

	tests := []struct {
		name  string
		start string
		pkg   string
		want  bool
	}{
		{name: "found in start dir", start: "/repo", pkg: "next", want: true},
		{name: "found in ancestor", start: "/repo/apps/web/src", pkg: "next", want: true},
		{name: "missing package", start: "/repo/apps/web", pkg: "react", want: false},
		{name: "directory without manifest", start: "/repo", pkg: "empty", want: false},
		{name: "outside the tree", start: "/elsewhere", pkg: "next", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := detector.NewNodePackageDetector(fsys, tt.start)
			assert.Equal(t, tt.want, d.HasPackage(tt.pkg))
		})
	}
}

func TestNodePackageDetector_Memoizes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	d := detector.NewNodePackageDetector(fsys, "/repo")

	assert.False(t, d.HasPackage("next"))

	require.NoError(t, afero.WriteFile(fsys, "/repo/node_modules/next/package.json", []byte(`{}`), 0o644))
	assert.False(t, d.HasPackage("next"), "first answer is kept for the process lifetime")
}

func TestResolveLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.LogFormat
		flag     string
		want     detector.LogFormat
	}{
		{name: "auto keeps pretty", detected: detector.FormatPretty, flag: "auto", want: detector.FormatPretty},
		{name: "empty keeps json", detected: detector.FormatJSON, flag: "", want: detector.FormatJSON},
		{name: "force json", detected: detector.FormatPretty, flag: "json", want: detector.FormatJSON},
		{name: "force pretty", detected: detector.FormatJSON, flag: "pretty", want: detector.FormatPretty},
		{name: "unknown falls back", detected: detector.FormatJSON, flag: "fancy", want: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveLogFormat(tt.detected, tt.flag))
		})
	}
}

func TestDetectLogFormat_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.FormatJSON, detector.DetectLogFormat())
}
