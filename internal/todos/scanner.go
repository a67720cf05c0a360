package todos

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Scanner accumulates entries across every scanned input. All scanners
// append to the same flat collection; grouping happens at render time.
type Scanner struct {
	Entries []Entry
}

// ScanContent tokenizes content line by line and records every todo marker
// found. Lines without the marker word are skipped outright.
func (s *Scanner) ScanContent(content, file string) {
	for i, line := range splitLines(content) {
		if !strings.Contains(strings.ToLower(line), marker) {
			continue
		}

		loc := Location{File: file, Line: i + 1}

		for _, word := range strings.Fields(line) {
			if !strings.HasPrefix(strings.ToLower(word), marker) {
				continue
			}

			m := classifyToken(word)
			switch m.kind {
			case matchWholeLine:
				s.Entries = append(s.Entries, Entry{
					Text:     strings.TrimSpace(line),
					Location: loc,
					Kind:     KindGeneric,
				})
			case matchGeneric:
				s.Entries = append(s.Entries, Entry{
					Text:     cleanText(line, word),
					Location: loc,
					Kind:     KindGeneric,
				})
			case matchCategory:
				s.Entries = append(s.Entries, Entry{
					Text:     cleanText(line, word),
					Location: loc,
					Kind:     KindCategory,
					Category: m.category,
				})
			case matchPriority:
				s.Entries = append(s.Entries, Entry{
					Text:     cleanText(line, word),
					Location: loc,
					Kind:     KindPriority,
					Priority: m.priority,
				})
				// Priority markers can stack on one line; keep scanning.
				continue
			case matchNone:
				continue
			}

			break
		}
	}
}

// ScanFile reads path and scans its content. Files that cannot be read or
// are not valid text contribute zero entries; only directory-level errors
// abort a run, and those are the walker's concern.
func (s *Scanner) ScanFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(content) {
		return
	}
	s.ScanContent(string(content), path)
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
