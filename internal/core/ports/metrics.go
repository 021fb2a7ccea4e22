package ports

import (
	"time"

	"go.trai.ch/csspipe/internal/core/domain"
)

// Metrics records cache and dispatch activity.
type Metrics interface {
	// CacheHit counts a lookup answered by the given tier.
	CacheHit(source domain.Source)
	// CacheMiss counts a lookup that fell through every enabled tier.
	CacheMiss()
	// MemoryCleared counts the entries dropped by a memory table reset.
	MemoryCleared(dropped int)
	// Dispatched records one dispatch with its strategy, duration and outcome.
	Dispatched(strategy domain.Strategy, d time.Duration, err error)
}
