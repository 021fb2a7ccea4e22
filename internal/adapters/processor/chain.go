package processor

import (
	"context"
	"strings"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Processor = (*Chain)(nil)

type stage struct {
	name string
	proc ports.Processor
}

// Chain runs plugins in order, feeding each one the previous output.
type Chain struct {
	stages []stage
}

// Append adds a plugin to the end of the chain.
func (c *Chain) Append(name string, p ports.Processor) {
	c.stages = append(c.stages, stage{name: name, proc: p})
}

// Len returns the number of plugins in the chain.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Process runs every stage. Warnings are joined with newlines; the first failure stops the chain.
func (c *Chain) Process(ctx context.Context, css string) (domain.Result, error) {
	var warnings []string

	for _, s := range c.stages {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}

		res, err := s.proc.Process(ctx, css)
		if err != nil {
			return domain.Result{}, zerr.Wrap(err, "plugin "+s.name+" failed")
		}

		css = res.CSS
		if res.Warning != "" {
			warnings = append(warnings, res.Warning)
		}
	}

	return domain.Result{CSS: css, Warning: strings.Join(warnings, "\n")}, nil
}
