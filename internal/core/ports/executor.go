package ports

import (
	"context"

	"go.trai.ch/csspipe/internal/core/domain"
)

// Executor runs external processes to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and waits for it to exit. A process that ran but exited
	// non-zero yields both its captured output and an error.
	Execute(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
