package todos

// Location points at the line an entry was discovered on. Line is 1-based.
type Location struct {
	File string
	Line int
}

// Kind tells which annotation scheme classified an entry.
type Kind uint8

const (
	// KindGeneric marks bare todo markers with no annotation.
	KindGeneric Kind = iota
	// KindPriority marks todoN markers carrying a numeric urgency.
	KindPriority
	// KindCategory marks todo@name markers and heading-derived entries.
	KindCategory
)

// Entry is one discovered todo marker. Entries are immutable once created
// and compare structurally, which the tests lean on.
type Entry struct {
	Text     string
	Location Location
	Kind     Kind

	// Priority is meaningful only when Kind is KindPriority. Lower values
	// are more urgent; zero-run markers map below zero (todo00 is -1).
	Priority int

	// Category is meaningful only when Kind is KindCategory and keeps the
	// source text's original case.
	Category string
}
