package ports

import (
	"context"

	"go.trai.ch/csspipe/internal/core/domain"
)

// Dispatcher obtains a transform result for guarded CSS.
//
//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch runs the toolchain configured by opts.Settings on css.
	Dispatch(ctx context.Context, css string, opts domain.Options) (domain.Result, error)
}
