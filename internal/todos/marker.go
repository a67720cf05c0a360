package todos

import "strings"

const (
	marker = "todo"
	digits = "0123456789"
)

// Comment closers stripped from the tail of an entry's text, in order.
var closers = []string{"*/", "-->", "--}}", "/>"}

type matchKind uint8

const (
	matchNone matchKind = iota
	matchGeneric
	matchWholeLine
	matchCategory
	matchPriority
)

// tokenMatch is the outcome of classifying one whitespace-delimited token
// that starts with the marker word.
type tokenMatch struct {
	kind     matchKind
	priority int
	category string
}

// classifyToken decides which annotation scheme a todo token uses. The
// checks are ordered: macro call, bare marker, category, priority. Tokens
// matching none of them produce no entry.
func classifyToken(word string) tokenMatch {
	lower := strings.ToLower(word)

	// todo!() carries its text inside the call, not after the token.
	if strings.HasPrefix(lower, marker+"!(") {
		return tokenMatch{kind: matchWholeLine}
	}

	// Handles `todo`, `TODO`, `todo:`, `TODO:` and quoted variants.
	if strings.TrimRight(lower, ":\"'`") == marker {
		return tokenMatch{kind: matchGeneric}
	}

	if at := strings.Index(word, "@"); at >= 0 {
		return tokenMatch{kind: matchCategory, category: word[at+1:]}
	}

	if strings.ContainsAny(word, digits) {
		if priority, ok := parsePriority(word); ok {
			return tokenMatch{kind: matchPriority, priority: priority}
		}
	}

	return tokenMatch{kind: matchNone}
}

// parsePriority decodes the todoN notation. A single digit is the priority
// itself; a run of zeros counts downward, so todo0 is 0, todo00 is -1,
// todo000 is -2. Anything else (todo11, todo1x) is invalid.
func parsePriority(word string) (int, bool) {
	lower := strings.ToLower(word)
	rest := strings.SplitN(lower, marker, 3)[1]

	if len(rest) == 1 {
		if rest[0] < '0' || rest[0] > '9' {
			return 0, false
		}
		return int(rest[0] - '0'), true
	}

	if len(rest) > 1 && strings.Count(rest, "0") == len(rest) {
		return 1 - len(rest), true
	}

	return 0, false
}

// cleanText extracts the entry text: everything after the first occurrence
// of the matched token, trimmed and with trailing comment closers removed.
func cleanText(line, word string) string {
	idx := strings.Index(line, word)
	if idx < 0 {
		return ""
	}

	text := strings.TrimSpace(line[idx+len(word):])
	for _, closer := range closers {
		for strings.HasSuffix(text, closer) {
			text = strings.TrimSuffix(text, closer)
		}
	}
	return strings.TrimSpace(text)
}
