// Package detector inspects the surrounding environment: installed Node packages
// and the kind of terminal csspipe writes to.
package detector

import (
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.FrameworkDetector = (*NodePackageDetector)(nil)

// NodePackageDetector resolves packages the way Node does: by looking for
// node_modules/<name>/package.json in the start directory and each of its parents.
type NodePackageDetector struct {
	fs    afero.Fs
	start string

	mu    sync.Mutex
	found map[string]bool
}

// NewNodePackageDetector creates a detector that starts its search at start.
func NewNodePackageDetector(fsys afero.Fs, start string) *NodePackageDetector {
	return &NodePackageDetector{
		fs:    fsys,
		start: filepath.Clean(start),
		found: make(map[string]bool),
	}
}

// HasPackage reports whether the named package is installed. Results are memoized.
func (d *NodePackageDetector) HasPackage(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if found, ok := d.found[name]; ok {
		return found
	}

	found := d.search(name)
	d.found[name] = found
	return found
}

func (d *NodePackageDetector) search(name string) bool {
	dir := d.start
	for {
		manifest := filepath.Join(dir, "node_modules", name, "package.json")
		if ok, err := afero.Exists(d.fs, manifest); err == nil && ok {
			return true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
