package todos

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		word  string
		want  int
		valid bool
	}{
		{"todo0", 0, true},
		{"todo00", -1, true},
		{"todo000", -2, true},
		{"todo0000", -3, true},
		{"todo1", 1, true},
		{"TODO5", 5, true},
		{"todo9", 9, true},
		{"todo11", 0, false},
		{"todo1x", 0, false},
		{"todo:1", 0, false},
	}

	for _, tc := range cases {
		got, ok := parsePriority(tc.word)
		if ok != tc.valid {
			t.Fatalf("parsePriority(%q) valid = %v, want %v", tc.word, ok, tc.valid)
		}
		if ok && got != tc.want {
			t.Fatalf("parsePriority(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestCleanTextStripsClosers(t *testing.T) {
	cases := []struct {
		line string
		word string
		want string
	}{
		{"// todo foo", "todo", "foo"},
		{"/* TODO: foo bar */", "TODO:", "foo bar"},
		{"<!-- TODO foo2 -->", "TODO", "foo2"},
		{"{{! todo handle this --}}", "todo", "handle this"},
		{"<input todo:: fix attr />", "todo::", "fix attr"},
		{"todo no closer here", "todo", "no closer here"},
		{"todo", "todo", ""},
	}

	for _, tc := range cases {
		if got := cleanText(tc.line, tc.word); got != tc.want {
			t.Fatalf("cleanText(%q, %q) = %q, want %q", tc.line, tc.word, got, tc.want)
		}
	}
}

func TestClassifyTokenOrder(t *testing.T) {
	if m := classifyToken(`todo!("later")`); m.kind != matchWholeLine {
		t.Fatalf("macro token kind = %v, want matchWholeLine", m.kind)
	}
	if m := classifyToken("TODO:"); m.kind != matchGeneric {
		t.Fatalf("bare token kind = %v, want matchGeneric", m.kind)
	}
	if m := classifyToken(`todo"`); m.kind != matchGeneric {
		t.Fatalf("quoted token kind = %v, want matchGeneric", m.kind)
	}
	if m := classifyToken("todo@Backend"); m.kind != matchCategory || m.category != "Backend" {
		t.Fatalf("category token = %+v, want category Backend", m)
	}
	if m := classifyToken("todo3"); m.kind != matchPriority || m.priority != 3 {
		t.Fatalf("priority token = %+v, want priority 3", m)
	}
	if m := classifyToken("todo11"); m.kind != matchNone {
		t.Fatalf("invalid priority token kind = %v, want matchNone", m.kind)
	}
	if m := classifyToken("todoish"); m.kind != matchNone {
		t.Fatalf("unmatched token kind = %v, want matchNone", m.kind)
	}
}
