// Package config provides the configuration loader for csspipe.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a YAML file.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a Loader reading from fsys.
func NewLoaderWithFs(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the configuration. An explicit path must exist; the default
// csspipe.yaml in dir is optional.
func (l *Loader) Load(dir, path string) (domain.Options, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, domain.ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.Options{}, nil
		}
		return domain.Options{}, errors.Join(
			domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, "cannot read config"), "path", path),
		)
	}

	return Parse(data, filepath.Dir(path))
}

// Parse decodes config bytes into options. A relative cache directory is
// resolved against base, the directory holding the config file.
func Parse(data []byte, base string) (domain.Options, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "invalid yaml"))
	}

	opts := domain.Options{
		CacheMem:  file.Cache.Memory,
		InProcess: file.InProcess,
		Settings:  file.Settings,
	}

	if dir := file.Cache.Dir; dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		opts.CacheDir = dir
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return domain.Options{}, errors.Join(
				domain.ErrConfigParseFailed,
				zerr.With(zerr.Wrap(err, "invalid timeout"), "timeout", file.Timeout),
			)
		}
		if timeout < 0 {
			return domain.Options{}, errors.Join(
				domain.ErrConfigParseFailed,
				zerr.With(zerr.New("timeout must not be negative"), "timeout", file.Timeout),
			)
		}
		opts.Timeout = timeout
	}

	return opts, nil
}
