// Package processor implements the bundled CSS toolchain: a plugin chain built
// from the passthrough settings.
package processor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// PluginsKey is the settings key holding the ordered plugin list.
const PluginsKey = "plugins"

var _ ports.ProcessorFactory = (*Factory)(nil)

// constructor builds one plugin from its options mapping.
type constructor func(options map[string]any) (ports.Processor, error)

// Factory builds processor chains from settings.
type Factory struct {
	plugins map[string]constructor
}

// NewFactory creates a Factory with the bundled plugins registered.
func NewFactory(executor ports.Executor) *Factory {
	return &Factory{
		plugins: map[string]constructor{
			CompactName: func(map[string]any) (ports.Processor, error) {
				return NewCompact(), nil
			},
			CommandName: func(options map[string]any) (ports.Processor, error) {
				return NewCommand(executor, options)
			},
		},
	}
}

// Names returns the registered plugin names in lexical order.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.plugins))
	for name := range f.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the chain described by settings[PluginsKey]. Without plugins the
// returned processor passes its input through unchanged.
func (f *Factory) Build(settings map[string]any) (ports.Processor, error) {
	entries, err := pluginEntries(settings[PluginsKey])
	if err != nil {
		return nil, err
	}

	chain := &Chain{}
	for i, entry := range entries {
		name, options, err := splitEntry(entry)
		if err != nil {
			return nil, errors.Join(domain.ErrInvalidPlugin, zerr.With(err, "index", i))
		}

		build, ok := f.plugins[name]
		if !ok {
			msg := fmt.Sprintf("no plugin named %s (available: %s)", name, strings.Join(f.Names(), ", "))
			return nil, errors.Join(domain.ErrUnknownPlugin, zerr.With(zerr.New(msg), "index", i))
		}

		p, err := build(options)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to configure plugin "+name), "index", i)
		}
		chain.Append(name, p)
	}

	return chain, nil
}

// pluginEntries normalizes the plugin list as decoded from JSON, YAML or Go literals.
func pluginEntries(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case []map[string]any:
		entries := make([]any, len(v))
		for i, m := range v {
			entries[i] = m
		}
		return entries, nil
	default:
		return nil, errors.Join(domain.ErrInvalidPlugin, zerr.New(fmt.Sprintf("plugins must be a list, got %T", raw)))
	}
}

// splitEntry validates that entry is a single-key mapping of name to options.
func splitEntry(entry any) (string, map[string]any, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return "", nil, zerr.New(fmt.Sprintf("plugin entry must be a single-key mapping, got %T", entry))
	}
	if len(m) != 1 {
		return "", nil, zerr.New(fmt.Sprintf("plugin entry must have exactly one key, got %d", len(m)))
	}

	for name, raw := range m {
		switch opts := raw.(type) {
		case nil:
			return name, map[string]any{}, nil
		case map[string]any:
			return name, opts, nil
		default:
			return "", nil, zerr.New(fmt.Sprintf("options of plugin %s must be a mapping, got %T", name, raw))
		}
	}
	return "", nil, nil
}
