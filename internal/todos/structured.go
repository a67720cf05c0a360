package todos

import (
	"fmt"
	"os"
	"strings"
)

// ScanTodoFile parses a dedicated Markdown todo list. Headings open a
// category that applies to the list items beneath them; items above any
// heading are generic. List items carrying a todoN token become priority
// entries instead.
func (s *Scanner) ScanTodoFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read todo file: %w", err)
	}

	category := ""
	hasCategory := false

	for i, line := range splitLines(string(content)) {
		if strings.HasPrefix(line, "#") {
			if _, after, ok := strings.Cut(line, "# "); ok {
				category, hasCategory = after, true
			}
			continue
		}

		item, ok := listItem(line)
		if !ok {
			continue
		}

		loc := Location{File: path, Line: i + 1}
		if s.priorityFromListLine(line, loc) {
			continue
		}

		entry := Entry{Text: item, Location: loc, Kind: KindGeneric}
		if hasCategory {
			entry.Kind = KindCategory
			entry.Category = category
		}
		s.Entries = append(s.Entries, entry)
	}

	return nil
}

// ScanReadme parses a README and collects list items from its TODO section.
// Only a heading reading "todo" or "todos" opens the section; everything
// before it is ignored, and the entries are never categorized.
func (s *Scanner) ScanReadme(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read readme: %w", err)
	}

	inTodos := false

	for i, line := range splitLines(string(content)) {
		if strings.HasPrefix(line, "#") {
			if _, after, ok := strings.Cut(line, "# "); ok {
				section := strings.TrimSpace(strings.TrimRight(strings.ToLower(after), ":"))
				if section == "todo" || section == "todos" {
					inTodos = true
				}
			}
			continue
		}

		if !inTodos {
			continue
		}

		item, ok := listItem(line)
		if !ok {
			continue
		}

		loc := Location{File: path, Line: i + 1}
		if s.priorityFromListLine(line, loc) {
			continue
		}

		s.Entries = append(s.Entries, Entry{Text: item, Location: loc, Kind: KindGeneric})
	}

	return nil
}

// priorityFromListLine reports whether the line carries a todoN-looking
// token. Such lines never fall through to the bullet-text path, even when
// the token fails to parse (todo11 swallows its line).
func (s *Scanner) priorityFromListLine(line string, loc Location) bool {
	for _, word := range strings.Fields(line) {
		if !strings.HasPrefix(strings.ToLower(word), marker) || !strings.ContainsAny(word, digits) {
			continue
		}
		if priority, ok := parsePriority(word); ok {
			s.Entries = append(s.Entries, Entry{
				Text:     cleanText(line, word),
				Location: loc,
				Kind:     KindPriority,
				Priority: priority,
			})
		}
		return true
	}
	return false
}

// listItem strips the Markdown bullet from a list line, returning false for
// lines that are not list items.
func listItem(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "-") {
		return "", false
	}
	trimmed = strings.TrimPrefix(trimmed, "- [ ] ")
	trimmed = strings.TrimPrefix(trimmed, "- ")
	return trimmed, true
}
