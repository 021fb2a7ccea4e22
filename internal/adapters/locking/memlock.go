// Package locking provides KeyLocker implementations for in-process and
// cross-process mutual exclusion over cache keys.
package locking

import (
	"context"
	"sync"

	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.KeyLocker = (*MemLock)(nil)

// MemLock serializes work per key inside a single process.
type MemLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemLock creates a new MemLock.
func NewMemLock() *MemLock {
	return &MemLock{
		locks: make(map[string]*sync.Mutex),
	}
}

// DoWithLock runs fn while holding the in-process lock for key.
func (m *MemLock) DoWithLock(_ context.Context, key string, fn func() error) error {
	lock := m.lockFor(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (m *MemLock) lockFor(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}
