package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// ImportGitignore reads dir/.gitignore, if present, and expands its
// patterns into the exclude set. Comment and negation lines are skipped
// (negation is not honored). A line that is exactly "*" excludes dir
// itself and ends processing; every other line is treated as a glob
// relative to dir, and whatever it matches on disk is excluded. Malformed
// patterns contribute nothing.
func ImportGitignore(dir string, excludes *Excludes) {
	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		if line == "*" {
			excludes.Add(dir)
			return
		}

		pattern := strings.Trim(strings.TrimSuffix(line, "*/"), "/")
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, match := range matches {
			excludes.Add(match)
		}
	}
}
