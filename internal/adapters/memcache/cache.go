// Package memcache implements the in-process result tier.
package memcache

import (
	"sync"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.MemoryCache = (*Cache)(nil)

// Cache holds transform outputs per consumer. Each consumer's table is bounded:
// inserting into a full table first drops every entry in it.
type Cache struct {
	mu      sync.Mutex
	limit   int
	entries map[string]map[string]string
	onEvict func(consumerID string, dropped int)
}

// Option configures a Cache.
type Option func(*Cache)

// WithEvictHook registers a callback invoked after a consumer's table is cleared.
func WithEvictHook(fn func(consumerID string, dropped int)) Option {
	return func(c *Cache) {
		c.onEvict = fn
	}
}

// New creates an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		limit:   domain.MaxMemoryEntries,
		entries: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the output cached for consumerID under hash.
func (c *Cache) Get(consumerID, hash string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	css, ok := c.entries[consumerID][hash]
	return css, ok
}

// Put stores css for consumerID under hash.
func (c *Cache) Put(consumerID, hash, css string) {
	c.mu.Lock()

	table, ok := c.entries[consumerID]
	if !ok {
		table = make(map[string]string, c.limit)
		c.entries[consumerID] = table
	}

	dropped := 0
	if _, exists := table[hash]; !exists && len(table) >= c.limit {
		dropped = len(table)
		clear(table)
	}
	table[hash] = css
	hook := c.onEvict

	c.mu.Unlock()

	if dropped > 0 && hook != nil {
		hook(consumerID, dropped)
	}
}

// Len returns the number of entries held for consumerID.
func (c *Cache) Len(consumerID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries[consumerID])
}
