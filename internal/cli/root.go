// Package cli wires the todoscan command tree: the root command scans and
// prints the report, browse opens the interactive viewer.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todoscan/internal/version"
)

// NewRootCommand creates the top-level Cobra command.
func NewRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todoscan [paths...]",
		Short: "Collect inline TODO markers from a source tree into one report.",
		Long: `todoscan walks one or more directory trees looking for TODO markers in any
text file, classifies them by annotation (todoN priorities, todo@category
labels, bare todos), and prints a grouped Markdown report. A dedicated todo
list file and a README TODO section can be folded into the same report.`,
		Version: version.Info(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, gatherOptions(args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceP("exclude", "e", []string{"node_modules", "vendor"}, "Paths to exclude from the scan")
	flags.StringP("todos", "t", "", "Path to a dedicated todo list file")
	flags.StringP("readme", "r", "", "Path to a README with a TODO section")
	flags.CountP("verbose", "v", "Print scan statistics (-vv adds visited paths)")

	viper.BindPFlag("exclude", flags.Lookup("exclude"))
	viper.BindPFlag("todos", flags.Lookup("todos"))
	viper.BindPFlag("readme", flags.Lookup("readme"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))

	cmd.AddCommand(newBrowseCommand(ctx))

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/todoscan/main.go to keep wiring contained
// in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
