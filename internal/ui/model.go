// Package ui implements the Bubble Tea browser over a finished scan.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoscan/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	locStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

// Model owns the browser state: the partitioned sections and which one is
// currently expanded.
type Model struct {
	sections []report.Section
	cursor   int
}

// NewModel builds a browser over the given report sections.
func NewModel(sections []report.Section) Model {
	return Model{sections: sections}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update reacts to key presses: vertical movement switches sections, q or
// esc leaves the browser.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	}

	return m, nil
}

// View renders the section list with the selected section expanded.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TODOs"))
	b.WriteString("\n\n")

	for i, section := range m.sections {
		header := fmt.Sprintf("%s (%d)", section.Title, len(section.Entries))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + header))
		} else {
			b.WriteString(headerStyle.Render("  " + header))
		}
		b.WriteString("\n")

		if i != m.cursor {
			continue
		}
		for _, entry := range section.Entries {
			location := fmt.Sprintf("%s:%d", entry.Location.File, entry.Location.Line)
			if entry.Text != "" {
				b.WriteString("    " + entryStyle.Render(entry.Text) + locStyle.Render(" ("+location+")"))
			} else {
				b.WriteString("    " + locStyle.Render(location))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down move - q quit"))
	b.WriteString("\n")

	return b.String()
}
