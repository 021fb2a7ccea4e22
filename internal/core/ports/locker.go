package ports

import "context"

// KeyLocker runs functions with mutual exclusion over a key.
type KeyLocker interface {
	// DoWithLock runs fn while holding the lock for key.
	DoWithLock(ctx context.Context, key string, fn func() error) error
}
