package engine

import (
	"testing"
)

// backends lists every Engine constructor; tests run against all of them
// to keep the two implementations in lockstep.
var backends = []struct {
	name    string
	compile func(pattern string, flags Flags) (Engine, error)
}{
	{"coregex", Compile},
	{"stdlib", CompileStdlib},
}

// TestCompileErrors tests that invalid syntax surfaces as an error from
// every backend.
func TestCompileErrors(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			if _, err := b.compile("(", FlagNone); err == nil {
				t.Error("compile(\"(\") returned no error")
			}
			if _, err := b.compile("a[", FlagNone); err == nil {
				t.Error("compile(\"a[\") returned no error")
			}
		})
	}
}

// TestFind tests unanchored and anchored single-match search.
func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		subject  string
		opts     SearchOptions
		want     bool
		start    int
		end      int
	}{
		{"unanchored interior", "b", "abc", SearchNone, true, 1, 2},
		{"unanchored miss", "z", "abc", SearchNone, false, 0, 0},
		{"anchored at start", "a", "abc", Anchored, true, 0, 1},
		{"anchored interior miss", "b", "abc", Anchored, false, 0, 0},
		{"anchor is start-only", "ab", "abcd", Anchored, true, 0, 2},
		{"empty pattern empty subject", "", "", SearchNone, true, 0, 0},
		{"caret anchors too", "^x", "x", SearchNone, true, 0, 1},
	}

	for _, b := range backends {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				e, err := b.compile(tt.pattern, FlagNone)
				if err != nil {
					t.Fatalf("compile(%q) failed: %v", tt.pattern, err)
				}
				m, ok := e.Find(tt.subject, tt.opts)
				if ok != tt.want {
					t.Fatalf("Find(%q) ok = %v, want %v", tt.subject, ok, tt.want)
				}
				if !ok {
					return
				}
				if start, end := m.Group(0); start != tt.start || end != tt.end {
					t.Errorf("Find(%q) = [%d:%d], want [%d:%d]", tt.subject, start, end, tt.start, tt.end)
				}
			})
		}
	}
}

// TestFindAll tests multi-match search ordering and counts.
func TestFindAll(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		subject string
		opts    SearchOptions
		count   int
	}{
		{"three numbers", `\d+`, "1 22 333", SearchNone, 3},
		{"no matches", `\d+`, "none here", SearchNone, 0},
		{"empty subject needs char", "a", "", SearchNone, 0},
		{"anchored caps at one", "a", "aaa", Anchored, 1},
		{"anchored miss", "b", "aaa", Anchored, 0},
	}

	for _, b := range backends {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				e, err := b.compile(tt.pattern, FlagNone)
				if err != nil {
					t.Fatalf("compile(%q) failed: %v", tt.pattern, err)
				}
				matches := e.FindAll(tt.subject, tt.opts)
				if len(matches) != tt.count {
					t.Fatalf("FindAll(%q) returned %d matches, want %d", tt.subject, len(matches), tt.count)
				}
				// Matches must be non-overlapping and ascending.
				prev := 0
				for i, m := range matches {
					start, end := m.Group(0)
					if start < prev || end < start {
						t.Errorf("match %d span [%d:%d] out of order (prev end %d)", i, start, end, prev)
					}
					prev = end
				}
			})
		}
	}
}

// TestCaptureGroups tests group reporting, including unmatched optional
// groups carrying the NotFound sentinel.
func TestCaptureGroups(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			e, err := b.compile(`(a)(x)?`, FlagNone)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			if got := e.NumGroups(); got != 2 {
				t.Errorf("NumGroups() = %d, want 2", got)
			}

			m, ok := e.Find("a", SearchNone)
			if !ok {
				t.Fatal("Find returned no match")
			}
			if m.NumGroups() != 3 {
				t.Fatalf("RawMatch.NumGroups() = %d, want 3", m.NumGroups())
			}
			if !m.Matched(1) {
				t.Error("group 1 should have matched")
			}
			if m.Matched(2) {
				t.Error("group 2 should not have matched")
			}
			if start, end := m.Group(2); start != NotFound || end != NotFound {
				t.Errorf("unmatched group = [%d:%d], want sentinel pair", start, end)
			}
		})
	}
}

// TestNumGroupsParity tests that every backend counts capture groups
// the stdlib way, excluding the whole match, and that the count agrees
// with the raw results the backend produces.
func TestNumGroupsParity(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		groups  int
	}{
		{`abc`, "abc", 0},
		{`(a)`, "a", 1},
		{`(a)(b)`, "ab", 2},
		{`(\w+)@(\w+)\.(\w+)`, "user@example.com", 3},
		{`(?P<k>\w+)=(?P<v>\w+)`, "a=1", 2},
	}

	for _, b := range backends {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.pattern, func(t *testing.T) {
				e, err := b.compile(tt.pattern, FlagNone)
				if err != nil {
					t.Fatalf("compile(%q) failed: %v", tt.pattern, err)
				}
				if got := e.NumGroups(); got != tt.groups {
					t.Errorf("NumGroups() = %d, want %d", got, tt.groups)
				}
				m, ok := e.Find(tt.subject, SearchNone)
				if !ok {
					t.Fatalf("Find(%q) found no match", tt.subject)
				}
				if m.NumGroups() != e.NumGroups()+1 {
					t.Errorf("RawMatch.NumGroups() = %d, want NumGroups()+1 = %d",
						m.NumGroups(), e.NumGroups()+1)
				}
			})
		}
	}
}

// TestGroupNames tests named-group reporting.
func TestGroupNames(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			e, err := b.compile(`(?P<year>\d{4})-(\d{2})`, FlagNone)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			names := e.GroupNames()
			want := []string{"", "year", ""}
			if len(names) != len(want) {
				t.Fatalf("GroupNames() = %v, want %v", names, want)
			}
			for i := range want {
				if names[i] != want[i] {
					t.Errorf("GroupNames()[%d] = %q, want %q", i, names[i], want[i])
				}
			}
		})
	}
}

// TestPatternText tests that the anchored twin never leaks into the
// reported pattern text.
func TestPatternText(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			e, err := b.compile(`a+b`, FlagNone)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			if got := e.Pattern(); got != `a+b` {
				t.Errorf("Pattern() = %q, want %q", got, `a+b`)
			}
		})
	}
}

// TestRawMatchAccessors tests the RawMatch helpers directly.
func TestRawMatchAccessors(t *testing.T) {
	m := RawMatch{0, 5, 1, 3, NotFound, NotFound}

	if m.NumGroups() != 3 {
		t.Errorf("NumGroups() = %d, want 3", m.NumGroups())
	}
	if start, end := m.Group(1); start != 1 || end != 3 {
		t.Errorf("Group(1) = [%d:%d], want [1:3]", start, end)
	}
	if !m.Matched(0) || !m.Matched(1) || m.Matched(2) {
		t.Errorf("Matched flags = %v %v %v, want true true false",
			m.Matched(0), m.Matched(1), m.Matched(2))
	}
}
