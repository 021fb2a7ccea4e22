package processor

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandName is the plugin name of the external CLI runner.
const CommandName = "command"

var _ ports.Processor = (*Command)(nil)

// Command pipes CSS through an external program: stdin in, stdout out.
// Output on stderr of a successful run becomes the warning.
type Command struct {
	executor ports.Executor
	args     []string
	env      map[string]string
	dir      string
}

// NewCommand creates a Command plugin from its options: argv (required list of
// strings), env (mapping) and dir (string).
func NewCommand(executor ports.Executor, options map[string]any) (*Command, error) {
	args, err := stringList(options["argv"])
	if err != nil {
		return nil, zerr.With(err, "option", "argv")
	}
	if len(args) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyCommand, "argv is required"), "option", "argv")
	}

	env, err := stringMap(options["env"])
	if err != nil {
		return nil, zerr.With(err, "option", "env")
	}

	dir, _ := options["dir"].(string)

	return &Command{executor: executor, args: args, env: env, dir: dir}, nil
}

// Process runs the configured program on css.
func (c *Command) Process(ctx context.Context, css string) (domain.Result, error) {
	res, err := c.executor.Execute(ctx, domain.Command{
		Args:  c.args,
		Env:   c.env,
		Dir:   c.dir,
		Stdin: []byte(css),
	})
	if err != nil {
		diagnostic := strings.TrimSpace(string(res.Stderr))
		if diagnostic == "" {
			diagnostic = err.Error()
		}
		return domain.Result{}, domain.NewTransformError(c.args[0] + ": " + diagnostic)
	}

	return domain.Result{
		CSS:     string(res.Stdout),
		Warning: strings.TrimSpace(string(res.Stderr)),
	}, nil
}

func stringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, zerr.New(fmt.Sprintf("expected a list of strings, item %d is %T", i, item))
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, zerr.New(fmt.Sprintf("expected a list of strings, got %T", raw))
	}
}

func stringMap(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, item := range v {
			switch s := item.(type) {
			case string:
				out[k] = s
			case fmt.Stringer:
				out[k] = s.String()
			default:
				out[k] = fmt.Sprint(item)
			}
		}
		return out, nil
	default:
		return nil, zerr.New(fmt.Sprintf("expected a mapping, got %T", raw))
	}
}
