// Package progrock records batch progress as progrock vertices.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.Progress = (*Recorder)(nil)

// Recorder implements ports.Progress with one vertex per transformed input.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder backed by an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex. Vertices are keyed by name, so names should be unique per batch.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
}

// Close flushes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
