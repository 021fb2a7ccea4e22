package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
)

// Serve handles exactly one request: it reads a WorkerRequest from stdin, runs the
// processor chain and writes a WorkerResponse to stdout. On failure the diagnostic
// goes to stderr. The return value is the process exit code.
func Serve(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, factory ports.ProcessorFactory) int {
	var req domain.WorkerRequest
	if err := json.NewDecoder(stdin).Decode(&req); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", domain.ErrWorkerProtocol.Error(), err)
		return 1
	}

	proc, err := factory.Build(req.Settings)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	res, err := proc.Process(ctx, req.CSS)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	resp := domain.WorkerResponse{ID: req.ID, CSS: res.CSS, Warning: res.Warning}
	if err := json.NewEncoder(stdout).Encode(resp); err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	return 0
}
