package domain

import (
	"maps"
	"time"
)

// Options configures a single transform call.
type Options struct {
	// CacheDir enables the disk tier when non-empty.
	CacheDir string
	// CacheMem enables the memory tier.
	CacheMem bool
	// InProcess selects the in-process strategy instead of a worker process.
	// The calling goroutine blocks for the whole transform.
	InProcess bool
	// ConsumerID identifies the calling source file. Required with CacheMem.
	ConsumerID string
	// Timeout bounds the worker process. Zero means no bound.
	Timeout time.Duration
	// Settings is forwarded verbatim to the CSS toolchain.
	Settings map[string]any
}

// Validate checks option combinations that cannot be served.
func (o Options) Validate() error {
	if o.CacheMem && o.ConsumerID == "" {
		return ErrMissingConsumerID
	}
	return nil
}

// Strategy names the dispatch strategy selected by the options.
func (o Options) Strategy() Strategy {
	if o.InProcess {
		return StrategyInProcess
	}
	return StrategySubprocess
}

// WithConsumer returns a copy of the options bound to the given consumer.
func (o Options) WithConsumer(id string) Options {
	o.ConsumerID = id
	o.Settings = maps.Clone(o.Settings)
	return o
}

// Strategy identifies how a transform is dispatched.
type Strategy string

const (
	// StrategyInProcess runs the toolchain on a goroutine of the calling process.
	StrategyInProcess Strategy = "inprocess"
	// StrategySubprocess runs the toolchain in a freshly spawned worker process.
	StrategySubprocess Strategy = "subprocess"
)
