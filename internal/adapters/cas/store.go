// Package cas implements the content addressable disk tier for transform outputs.
package cas

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DiskCache = (*Store)(nil)

const tempPattern = ".tmp-*"

// Store implements ports.DiskCache using one file per content hash.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store on the host filesystem.
func NewStore() *Store {
	return NewStoreWithFs(afero.NewOsFs())
}

// NewStoreWithFs creates a Store on the given filesystem.
func NewStoreWithFs(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// Get retrieves the output stored for hash under dir.
func (s *Store) Get(dir, hash string) (string, bool, error) {
	path := filepath.Join(dir, hash)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Join(domain.ErrCacheReadFailed, zerr.With(zerr.Wrap(err, "failed to read entry"), "path", path))
	}

	return string(data), true, nil
}

// Put stores css for hash under dir. The directory is created if missing and the
// entry becomes visible only once it is complete.
func (s *Store) Put(dir, hash, css string) error {
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCacheDirCreateFailed, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir))
	}

	path := filepath.Join(dir, hash)

	tmp, err := afero.TempFile(s.fs, dir, tempPattern)
	if err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", path))
	}
	tmpPath := tmp.Name()

	_, err = tmp.WriteString(css)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = s.fs.Chmod(tmpPath, domain.FilePerm)
	}
	if err == nil {
		err = s.fs.Rename(tmpPath, path)
	}
	if err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.Join(domain.ErrCacheWriteFailed, zerr.With(zerr.Wrap(err, "failed to write entry"), "path", path))
	}

	return nil
}
