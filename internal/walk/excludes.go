// Package walk implements the recursive directory traversal feeding files
// to the todo scanner, with exclusion rules layered from explicit paths and
// .gitignore files discovered along the way.
package walk

import (
	"path/filepath"
	"sort"
)

// Excludes is the set of canonical paths the walker must not descend into
// or scan. It keeps growing while the walk runs: a .gitignore imported in
// one directory affects siblings and descendants visited later.
type Excludes struct {
	paths map[string]struct{}
}

// NewExcludes returns an empty exclude set.
func NewExcludes() *Excludes {
	return &Excludes{paths: make(map[string]struct{})}
}

// Add canonicalizes path and records it. Paths that cannot be resolved,
// typically because they do not exist, are silently ignored.
func (e *Excludes) Add(path string) {
	canon, err := canonical(path)
	if err != nil {
		return
	}
	e.paths[canon] = struct{}{}
}

// Contains reports whether path resolves to an excluded canonical path.
func (e *Excludes) Contains(path string) bool {
	canon, err := canonical(path)
	if err != nil {
		return false
	}
	_, ok := e.paths[canon]
	return ok
}

// Len returns the number of excluded paths.
func (e *Excludes) Len() int {
	return len(e.paths)
}

// Paths returns the excluded canonical paths in sorted order.
func (e *Excludes) Paths() []string {
	paths := make([]string, 0, len(e.paths))
	for p := range e.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// canonical resolves a path to its absolute, symlink-free form so that
// exclusion checks are exact regardless of how a path was spelled.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
