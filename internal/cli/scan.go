package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"todoscan/internal/report"
	"todoscan/internal/todos"
	"todoscan/internal/walk"
)

// collectEntries performs the whole scan: structured files first, then the
// directory walk over every root. The structured file paths join the
// exclude set so the walker does not scan them a second time.
func collectEntries(opts Options) ([]todos.Entry, *walk.Stats, *walk.Excludes, []string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolve working directory: %w", err)
	}

	roots := opts.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}
	resolved := make([]string, len(roots))
	for i, root := range roots {
		resolved[i] = absAgainst(cwd, root)
	}

	excludes := walk.NewExcludes()
	for _, exclude := range opts.Excludes {
		excludes.Add(absAgainst(cwd, exclude))
	}

	scanner := &todos.Scanner{}

	if opts.TodoFile != "" {
		path := absAgainst(cwd, opts.TodoFile)
		excludes.Add(path)
		if fileExists(path) {
			if err := scanner.ScanTodoFile(path); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	if opts.Readme != "" {
		path := absAgainst(cwd, opts.Readme)
		excludes.Add(path)
		if fileExists(path) {
			if err := scanner.ScanReadme(path); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	stats := &walk.Stats{TrackPaths: opts.Verbosity > 1}
	walker := &walk.Walker{Excludes: excludes, Stats: stats, Scan: scanner.ScanFile}
	for _, root := range resolved {
		if err := walker.Walk(root); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return scanner.Entries, stats, excludes, resolved, nil
}

func runScan(cmd *cobra.Command, opts Options) error {
	entries, stats, excludes, roots, err := collectEntries(opts)
	if err != nil {
		return err
	}

	report.Render(cmd.OutOrStdout(), entries)

	if opts.Verbosity > 0 {
		errw := cmd.ErrOrStderr()
		fmt.Fprintln(errw)
		if opts.Verbosity > 1 {
			fmt.Fprintf(errw, "[INFO] Roots: %s\n", strings.Join(roots, ", "))
			fmt.Fprintf(errw, "[INFO] Excludes: %s\n", strings.Join(excludes.Paths(), ", "))
		}
		stats.Print(errw)
	}

	return nil
}
