package locking

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyLocker = (*FlockGroup)(nil)

const defaultRetryDelay = 10 * time.Millisecond

// FlockGroup serializes work per key across processes using advisory file locks.
// A key is the lock file's path without its ".lock" suffix. Callers in the same
// process are ordered by an in-memory lock first so a single lock file is never
// contended by the process itself.
type FlockGroup struct {
	retryDelay time.Duration
	local      *MemLock
}

// NewFlockGroup creates a FlockGroup.
func NewFlockGroup() *FlockGroup {
	return &FlockGroup{
		retryDelay: defaultRetryDelay,
		local:      NewMemLock(),
	}
}

// DoWithLock runs fn while holding both the in-process and the file lock for key.
// The lock file's directory is created on demand. fn is not called when the lock
// cannot be taken.
func (g *FlockGroup) DoWithLock(ctx context.Context, key string, fn func() error) error {
	return g.local.DoWithLock(ctx, key, func() error {
		path := key + ".lock"
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create lock directory"), "path", dir)
		}

		fileLock := flock.New(path)

		locked, err := fileLock.TryLockContext(ctx, g.retryDelay)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to acquire cache lock"), "path", path)
		}
		if !locked {
			return zerr.With(zerr.New("failed to acquire cache lock"), "path", path)
		}
		defer func() {
			_ = fileLock.Unlock()
		}()

		return fn()
	})
}
