package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Walker drives a depth-first traversal, applying exclusion rules and
// handing every surviving regular file to Scan. The exclude set is shared
// and mutable: .gitignore files imported mid-walk extend it in place.
type Walker struct {
	Excludes *Excludes
	Stats    *Stats
	Scan     func(path string)
}

// Walk visits every descendant of root. Hidden entries are skipped
// entirely. A directory's .gitignore is imported before its children are
// considered, and the directory abandons itself if its own gitignore
// excluded it (a lone "*" pattern). Unreadable directory listings abort
// the walk; unreadable files are the scanner's problem and never fatal.
func (w *Walker) Walk(root string) error {
	w.Stats.addFolder(root)

	ImportGitignore(root, w.Excludes)
	if w.Excludes.Contains(root) {
		return nil
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", root, err)
	}

	for _, child := range children {
		if strings.HasPrefix(child.Name(), ".") {
			continue
		}

		path := filepath.Join(root, child.Name())
		if w.Excludes.Contains(path) {
			continue
		}

		if child.IsDir() {
			if err := w.Walk(path); err != nil {
				return err
			}
			continue
		}

		w.Stats.addFile(path)
		if w.Scan != nil {
			w.Scan(path)
		}
	}

	return nil
}
