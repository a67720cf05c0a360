package todos

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanContentGenericMarkers(t *testing.T) {
	content := `1
2
// todo foo
/* TODO: foo bar */
* TODO baz
TODO baz2
TODO baz2 todo
<!-- TODO foo2 -->
todo!("not implemented")
`

	s := &Scanner{}
	s.ScanContent(content, "foo.txt")

	want := []Entry{
		{Text: "foo", Location: Location{File: "foo.txt", Line: 3}, Kind: KindGeneric},
		{Text: "foo bar", Location: Location{File: "foo.txt", Line: 4}, Kind: KindGeneric},
		{Text: "baz", Location: Location{File: "foo.txt", Line: 5}, Kind: KindGeneric},
		{Text: "baz2", Location: Location{File: "foo.txt", Line: 6}, Kind: KindGeneric},
		{Text: "baz2 todo", Location: Location{File: "foo.txt", Line: 7}, Kind: KindGeneric},
		{Text: "foo2", Location: Location{File: "foo.txt", Line: 8}, Kind: KindGeneric},
		{Text: `todo!("not implemented")`, Location: Location{File: "foo.txt", Line: 9}, Kind: KindGeneric},
	}

	assertEntries(t, s.Entries, want)
}

func TestScanContentCategoryMarkers(t *testing.T) {
	content := `todo@foo
todo@bar abc def
3
todo@baz x y
// TODO@baz2 a
/* TODO@baz3 */
<!-- TODO@baz3 -->
`

	s := &Scanner{}
	s.ScanContent(content, "foo.txt")

	want := []Entry{
		{Text: "", Location: Location{File: "foo.txt", Line: 1}, Kind: KindCategory, Category: "foo"},
		{Text: "abc def", Location: Location{File: "foo.txt", Line: 2}, Kind: KindCategory, Category: "bar"},
		{Text: "x y", Location: Location{File: "foo.txt", Line: 4}, Kind: KindCategory, Category: "baz"},
		{Text: "a", Location: Location{File: "foo.txt", Line: 5}, Kind: KindCategory, Category: "baz2"},
		{Text: "", Location: Location{File: "foo.txt", Line: 6}, Kind: KindCategory, Category: "baz3"},
		{Text: "", Location: Location{File: "foo.txt", Line: 7}, Kind: KindCategory, Category: "baz3"},
	}

	assertEntries(t, s.Entries, want)
}

func TestScanContentPriorityMarkers(t *testing.T) {
	content := `todo00
todo000 abc
todo0 abc def
todo1 foo
// todo0 bar
// TODO1 a
/* TODO2 */
<!-- TODO4 b -->
todo11 invalid syntax yields nothing
`

	s := &Scanner{}
	s.ScanContent(content, "foo.txt")

	want := []Entry{
		{Text: "", Location: Location{File: "foo.txt", Line: 1}, Kind: KindPriority, Priority: -1},
		{Text: "abc", Location: Location{File: "foo.txt", Line: 2}, Kind: KindPriority, Priority: -2},
		{Text: "abc def", Location: Location{File: "foo.txt", Line: 3}, Kind: KindPriority, Priority: 0},
		{Text: "foo", Location: Location{File: "foo.txt", Line: 4}, Kind: KindPriority, Priority: 1},
		{Text: "bar", Location: Location{File: "foo.txt", Line: 5}, Kind: KindPriority, Priority: 0},
		{Text: "a", Location: Location{File: "foo.txt", Line: 6}, Kind: KindPriority, Priority: 1},
		{Text: "", Location: Location{File: "foo.txt", Line: 7}, Kind: KindPriority, Priority: 2},
		{Text: "b", Location: Location{File: "foo.txt", Line: 8}, Kind: KindPriority, Priority: 4},
	}

	assertEntries(t, s.Entries, want)
}

func TestScanContentStacksPriorityMarkersOnOneLine(t *testing.T) {
	s := &Scanner{}
	s.ScanContent("todo1 x todo2 y", "a.txt")

	want := []Entry{
		{Text: "x todo2 y", Location: Location{File: "a.txt", Line: 1}, Kind: KindPriority, Priority: 1},
		{Text: "y", Location: Location{File: "a.txt", Line: 1}, Kind: KindPriority, Priority: 2},
	}

	assertEntries(t, s.Entries, want)
}

func TestScanContentIsIdempotent(t *testing.T) {
	content := "// todo foo\ntodo@x bar\ntodo1 baz\n"

	first := &Scanner{}
	first.ScanContent(content, "a.txt")
	second := &Scanner{}
	second.ScanContent(content, "a.txt")

	assertEntries(t, second.Entries, first.Entries)
}

func TestScanFileSwallowsUnreadableContent(t *testing.T) {
	dir := t.TempDir()

	binary := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(binary, []byte{0x74, 0x6f, 0x64, 0x6f, 0xff, 0xfe}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := &Scanner{}
	s.ScanFile(binary)
	s.ScanFile(filepath.Join(dir, "does-not-exist.txt"))

	if len(s.Entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(s.Entries))
	}
}

func assertEntries(t *testing.T, got, want []Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("entries length = %d, want %d\ngot: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}
