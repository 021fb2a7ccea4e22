// Package pipeline implements the cached transform contract: guard placeholders,
// consult the cache tiers, dispatch on a miss and store the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Transformer = (*Pipeline)(nil)

// Pipeline serves transform requests from the memory tier, the disk tier or a dispatcher.
type Pipeline struct {
	hasher     ports.Hasher
	memory     ports.MemoryCache
	disk       ports.DiskCache
	locker     ports.KeyLocker
	inProcess  ports.Dispatcher
	subprocess ports.Dispatcher
	logger     ports.Logger
	tracer     ports.Tracer
	metrics    ports.Metrics

	group singleflight.Group
}

// New creates a Pipeline.
func New(
	hasher ports.Hasher,
	memory ports.MemoryCache,
	disk ports.DiskCache,
	locker ports.KeyLocker,
	inProcess ports.Dispatcher,
	subprocess ports.Dispatcher,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Pipeline {
	return &Pipeline{
		hasher:     hasher,
		memory:     memory,
		disk:       disk,
		locker:     locker,
		inProcess:  inProcess,
		subprocess: subprocess,
		logger:     logger,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// Transform returns the transformed CSS for req. Placeholders are guarded for the
// toolchain and restored in the output. A warning from the toolchain is logged.
func (p *Pipeline) Transform(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return domain.Outcome{}, err
	}

	guarded := domain.EncodePlaceholders(req.CSS)
	hash := p.hasher.Hash(guarded)

	ctx, span := p.tracer.Start(ctx, "transform",
		ports.WithAttribute("hash", hash),
		ports.WithAttribute("strategy", string(opts.Strategy())),
	)
	defer span.End()

	if opts.CacheMem {
		if css, ok := p.memory.Get(opts.ConsumerID, hash); ok {
			p.metrics.CacheHit(domain.SourceMemory)
			span.SetAttribute("source", string(domain.SourceMemory))
			return domain.Outcome{CSS: css, Hash: hash, Source: domain.SourceMemory}, nil
		}
	}

	var out domain.Outcome
	resolve := func() error {
		var err error
		out, err = p.resolve(ctx, guarded, hash, opts)
		return err
	}

	err := p.resolveLocked(ctx, hash, opts, resolve)
	if err != nil {
		span.RecordError(err)
		return domain.Outcome{}, err
	}

	span.SetAttribute("source", string(out.Source))
	if out.Warning != "" {
		p.logger.Warn(out.Warning)
	}
	return out, nil
}

// resolveLocked runs resolve under the per-hash lock kept in the cache directory.
// When the lock cannot be taken, resolve runs unlocked after a warning.
func (p *Pipeline) resolveLocked(ctx context.Context, hash string, opts domain.Options, resolve func() error) error {
	if opts.CacheDir == "" {
		return resolve()
	}

	ran := false
	key := filepath.Join(opts.CacheDir, domain.LockDirName, hash)
	err := p.locker.DoWithLock(ctx, key, func() error {
		ran = true
		return resolve()
	})
	if ran || err == nil {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	p.logger.Warn("running without cache lock: " + err.Error())
	return resolve()
}

// resolve runs below the memory tier. With a disk tier it runs under the key lock.
func (p *Pipeline) resolve(ctx context.Context, guarded, hash string, opts domain.Options) (domain.Outcome, error) {
	if opts.CacheDir != "" {
		css, ok, err := p.disk.Get(opts.CacheDir, hash)
		switch {
		case err != nil:
			p.logger.Warn("ignoring unreadable cache entry: " + err.Error())
		case ok:
			p.metrics.CacheHit(domain.SourceDisk)
			if opts.CacheMem {
				p.memory.Put(opts.ConsumerID, hash, css)
			}
			return domain.Outcome{CSS: css, Hash: hash, Source: domain.SourceDisk}, nil
		}
	}

	p.metrics.CacheMiss()

	result, err := p.dispatch(ctx, guarded, hash, opts)
	if err != nil {
		return domain.Outcome{}, err
	}

	css := domain.DecodePlaceholders(result.CSS)

	// Disk first: a failed call must not leave a memory entry behind.
	if opts.CacheDir != "" {
		if err := p.disk.Put(opts.CacheDir, hash, css); err != nil {
			if errors.Is(err, domain.ErrCacheDirCreateFailed) {
				return domain.Outcome{}, err
			}
			p.logger.Warn("failed to store cache entry: " + err.Error())
		}
	}

	if opts.CacheMem {
		p.memory.Put(opts.ConsumerID, hash, css)
	}

	return domain.Outcome{CSS: css, Warning: result.Warning, Hash: hash, Source: domain.SourceDispatch}, nil
}

// dispatch shares one toolchain run between concurrent requests with the same
// input, strategy, timeout and settings.
func (p *Pipeline) dispatch(ctx context.Context, guarded, hash string, opts domain.Options) (domain.Result, error) {
	strategy := opts.Strategy()
	dispatcher := p.subprocess
	if strategy == domain.StrategyInProcess {
		dispatcher = p.inProcess
	}

	// fmt prints maps with sorted keys, so equal settings give equal keys.
	key := fmt.Sprintf("%s/%s/%s/%v", hash, strategy, opts.Timeout, opts.Settings)
	ch := p.group.DoChan(key, func() (any, error) {
		// The run is shared by every waiter, so it must not end when the first
		// caller goes away. Each waiter still returns on its own ctx below.
		ctx, span := p.tracer.Start(context.WithoutCancel(ctx), "dispatch", ports.WithAttribute("strategy", string(strategy)))
		defer span.End()

		start := time.Now()
		res, err := dispatcher.Dispatch(ctx, guarded, opts)
		p.metrics.Dispatched(strategy, time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return res, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return domain.Result{}, r.Err
		}
		res, ok := r.Val.(domain.Result)
		if !ok {
			return domain.Result{}, zerr.New("unexpected dispatch result")
		}
		return res, nil
	case <-ctx.Done():
		return domain.Result{}, ctx.Err()
	}
}
