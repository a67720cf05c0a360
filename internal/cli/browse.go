package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todoscan/internal/report"
	"todoscan/internal/ui"
)

func newBrowseCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [paths...]",
		Short: "Scan and browse the discovered todos interactively.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, _, _, _, err := collectEntries(gatherOptions(args))
			if err != nil {
				return err
			}

			m := ui.NewModel(report.Partition(entries))
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}
