// Package unimatch is a thin, Unicode-aware facade over a regex engine.
//
// The engine (github.com/coregx/coregex by default, stdlib regexp as an
// alternative) owns pattern syntax and match execution; unimatch adds
// what the engine does not:
//
//   - Position translation: engine byte offsets become textpos.Position
//     values carrying byte, rune, and grapheme-cluster coordinates.
//   - Uniform results: whole match and capture groups are one indexable
//     Match object, group 0 being the whole match.
//   - Escaping: metacharacters in arbitrary text can be escaped for
//     literal inclusion in a pattern.
//
// Basic usage:
//
//	p, err := unimatch.Compile(`(\w+)=(\w+)`, engine.FlagNone)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range p.FindAll("a=1 b=2") {
//	    fmt.Println(m.Group(1), m.Group(2))
//	}
//
// Match is start-anchored, Search is not:
//
//	p := unimatch.MustCompile(`b`)
//	_, ok := p.Match("abc")  // false: match must begin at offset 0
//	_, ok = p.Search("abc")  // true: found at offset 1
package unimatch

import (
	"github.com/coregx/unimatch/engine"
	"github.com/coregx/unimatch/textpos"
)

// Pattern is a compiled pattern facade.
//
// A Pattern holds the pattern text and a compiled engine handle; it has
// no mutable state, so it is safe for concurrent matching whenever the
// engine handle is (true for both bundled backends).
type Pattern struct {
	eng     engine.Engine
	pattern string
}

// Compile compiles pattern with the default engine backend.
//
// Invalid syntax is reported as a *CompileError, never a panic.
func Compile(pattern string, flags engine.Flags) (*Pattern, error) {
	eng, err := engine.Compile(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return &Pattern{eng: eng, pattern: pattern}, nil
}

// MustCompile is Compile for patterns known valid at build time; it
// panics on error.
//
// Example:
//
//	var word = unimatch.MustCompile(`\w+`)
func MustCompile(pattern string, flags engine.Flags) *Pattern {
	p, err := Compile(pattern, flags)
	if err != nil {
		panic("unimatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileEngine wraps an already-compiled engine handle. The pattern
// text is taken from the handle itself, so the facade always reports
// exactly the text that was compiled.
func CompileEngine(eng engine.Engine) *Pattern {
	return &Pattern{eng: eng, pattern: eng.Pattern()}
}

// FindAll returns every non-overlapping match of the pattern in subject,
// in left-to-right order. A nil result means the subject contains no
// match; that is a normal outcome, not an error.
//
// All matches share one position walk over the subject: the engine
// yields matches in ascending offset order, so offsets are resolved with
// a single monotonic cursor.
func (p *Pattern) FindAll(subject string) []*Match {
	raw := p.eng.FindAll(subject, engine.SearchNone)
	if raw == nil {
		return nil
	}
	names := p.eng.GroupNames()
	mapper := textpos.NewMapper(subject)
	matches := make([]*Match, len(raw))
	for i, r := range raw {
		matches[i] = newMatch(subject, r, names, mapper)
	}
	return matches
}

// Match returns the match beginning at subject offset 0, if any.
//
// This is a start anchor only: the match may end before the subject
// does. It is not a full-string match; `b` against "bcd" matches "b".
func (p *Pattern) Match(subject string) (*Match, bool) {
	return p.find(subject, engine.Anchored)
}

// Search returns the leftmost match anywhere in subject, if any.
func (p *Pattern) Search(subject string) (*Match, bool) {
	return p.find(subject, engine.SearchNone)
}

func (p *Pattern) find(subject string, opts engine.SearchOptions) (*Match, bool) {
	raw, ok := p.eng.Find(subject, opts)
	if !ok {
		return nil, false
	}
	return newMatch(subject, raw, p.eng.GroupNames(), textpos.NewMapper(subject)), true
}

// IsMatch reports whether the pattern matches at subject offset 0.
func (p *Pattern) IsMatch(subject string) bool {
	_, ok := p.Match(subject)
	return ok
}

// Contains reports whether the pattern matches anywhere in subject.
func (p *Pattern) Contains(subject string) bool {
	_, ok := p.Search(subject)
	return ok
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.pattern
}

// GroupCount returns the number of capture groups in the pattern, not
// counting the whole match. Every Match this pattern produces has
// NumRanges() == GroupCount()+1.
func (p *Pattern) GroupCount() int {
	return p.eng.NumGroups()
}

// GroupNames returns the capture group names, indexed like Match groups;
// entry 0 is always "". The slice is shared and must not be modified.
func (p *Pattern) GroupNames() []string {
	return p.eng.GroupNames()
}
