// Package fs provides file system adapters for walking, resolving and hashing stylesheets.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// StylesheetExt is the extension of files picked up when walking a directory.
const StylesheetExt = ".css"

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkStylesheets yields every stylesheet below root in lexical order,
// skipping VCS metadata, node_modules and ignored entries.
func (w *Walker) WalkStylesheets(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), StylesheetExt) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip reports whether an entry is excluded. For directories the returned action
// is filepath.SkipDir; for files it is nil.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() {
		switch name {
		case ".git", ".jj", "node_modules":
			return true, filepath.SkipDir
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
