package ports

import (
	"context"

	"go.trai.ch/csspipe/internal/core/domain"
)

// Transformer serves transform requests through the cache tiers and a dispatcher.
//
//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	// Transform returns the transformed CSS for req together with its provenance.
	Transform(ctx context.Context, req domain.Request) (domain.Outcome, error)
}
