// Package report turns the flat entry collection into a grouped, stably
// ordered Markdown report with terminal coloring.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todoscan/internal/todos"
)

// Styles mirror the original ANSI palette; lipgloss degrades them to plain
// text when stdout is not a terminal.
var (
	headingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	otherStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true)
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// Section is one rendered group of entries.
type Section struct {
	Title   string
	Kind    todos.Kind
	Entries []todos.Entry
}

// Partition buckets entries into the canonical report order: priority
// sections ascending by value, category sections in lexicographic order,
// then the "Other" bucket with generic entries sorted by text. Entries
// inside priority and category sections keep their discovery order.
func Partition(entries []todos.Entry) []Section {
	byPriority := make(map[int][]todos.Entry)
	byCategory := make(map[string][]todos.Entry)
	var generic []todos.Entry

	for _, entry := range entries {
		switch entry.Kind {
		case todos.KindPriority:
			byPriority[entry.Priority] = append(byPriority[entry.Priority], entry)
		case todos.KindCategory:
			byCategory[entry.Category] = append(byCategory[entry.Category], entry)
		default:
			generic = append(generic, entry)
		}
	}

	priorities := make([]int, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	sort.Ints(priorities)

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sort.SliceStable(generic, func(i, j int) bool {
		return generic[i].Text < generic[j].Text
	})

	sections := make([]Section, 0, len(priorities)+len(categories)+1)
	for _, priority := range priorities {
		sections = append(sections, Section{
			Title:   PriorityLabel(priority),
			Kind:    todos.KindPriority,
			Entries: byPriority[priority],
		})
	}
	for _, category := range categories {
		sections = append(sections, Section{
			Title:   category,
			Kind:    todos.KindCategory,
			Entries: byCategory[category],
		})
	}
	sections = append(sections, Section{
		Title:   "Other",
		Kind:    todos.KindGeneric,
		Entries: generic,
	})

	return sections
}

// PriorityLabel renders a priority value back into its todoN notation:
// positive values append the digit, zero is todo0, and negative values add
// one extra zero per level below zero.
func PriorityLabel(priority int) string {
	switch {
	case priority > 0:
		return marker + strconv.Itoa(priority)
	case priority == 0:
		return marker + "0"
	default:
		return marker + "0" + strings.Repeat("0", -priority)
	}
}

const marker = "todo"

// Render writes the full report to w.
func Render(w io.Writer, entries []todos.Entry) {
	fmt.Fprintf(w, "%s\n\n", headingStyle.Render("# TODOs"))

	sections := Partition(entries)
	for i, section := range sections {
		last := i == len(sections)-1

		style := priorityStyle
		switch section.Kind {
		case todos.KindCategory:
			style = categoryStyle
		case todos.KindGeneric:
			style = otherStyle
		}

		fmt.Fprintf(w, "%s\n", style.Render("## "+section.Title))
		for _, entry := range section.Entries {
			renderEntry(w, entry)
		}
		if !last {
			fmt.Fprintln(w)
		}
	}
}

func renderEntry(w io.Writer, entry todos.Entry) {
	location := fmt.Sprintf("%s:%d", entry.Location.File, entry.Location.Line)

	if entry.Text != "" {
		fmt.Fprintf(w, "%s%s%s\n",
			dimStyle.Render("- [ ] "),
			textStyle.Render(entry.Text),
			dimStyle.Render(" ("+location+")"))
		return
	}

	fmt.Fprintf(w, "%s%s\n",
		dimStyle.Render("- [ ] "),
		locationStyle.Render(location))
}
