package unimatch

import (
	"fmt"

	"github.com/coregx/unimatch/engine"
	"github.com/coregx/unimatch/textpos"
)

// Match is one successful match of a Pattern against a subject.
//
// A Match holds the subject and one textpos.Range per capture group, with
// group 0 always the whole match, in ascending group order. Go strings
// are immutable, so retaining the subject keeps every Group and Range
// accessor valid regardless of what the caller does afterwards.
//
// A Match is immutable and safe to share between goroutines.
//
// Example:
//
//	p := unimatch.MustCompile(`(\w+)@(\w+)`)
//	m, ok := p.Search("mail me: user@example")
//	// m.NumRanges() == 3
//	// m.Group(0) == "user@example", m.Group(1) == "user"
type Match struct {
	subject string
	ranges  []textpos.Range
	present []bool
	names   []string
}

// newMatch builds a Match from a raw engine result, resolving byte
// offsets through mapper. The mapper is shared across the matches of one
// FindAll call so ascending ranges are resolved in a single walk.
//
// A raw result whose whole-match slot carries the not-found sentinel can
// only mean the engine reported success for a non-match; that breaks the
// collaborator contract, so construction fails fast.
func newMatch(subject string, raw engine.RawMatch, names []string, mapper *textpos.Mapper) *Match {
	if !raw.Matched(0) {
		panic("unimatch: engine reported a match with an unset whole-match range")
	}
	n := raw.NumGroups()
	m := &Match{
		subject: subject,
		ranges:  make([]textpos.Range, n),
		present: make([]bool, n),
		names:   names,
	}
	for i := 0; i < n; i++ {
		if !raw.Matched(i) {
			continue
		}
		start, end := raw.Group(i)
		m.ranges[i] = mapper.Map(start, end-start)
		m.present[i] = true
	}
	return m
}

// NumRanges returns the number of ranges: one for the whole match plus
// one per capture group, whether or not the group participated.
func (m *Match) NumRanges() int {
	return len(m.ranges)
}

// Group returns the subject slice for range i. Group(0) is the whole
// match; an optional group that did not participate yields "".
//
// Requesting i >= NumRanges() is a programming error and panics, like
// indexing past the end of a slice. Use GroupMatched to distinguish an
// empty match from an absent group.
func (m *Match) Group(i int) string {
	m.check(i)
	if !m.present[i] {
		return ""
	}
	return m.ranges[i].Slice(m.subject)
}

// GroupMatched reports whether group i participated in the match.
func (m *Match) GroupMatched(i int) bool {
	m.check(i)
	return m.present[i]
}

// Range returns the position range of group i. For a group that did not
// participate, the zero Range is returned; check GroupMatched first.
func (m *Match) Range(i int) textpos.Range {
	m.check(i)
	return m.ranges[i]
}

// GroupByName returns the text of the named capture group, and whether a
// group with that name both exists and participated in the match.
//
// Example:
//
//	p := unimatch.MustCompile(`(?P<year>\d{4})-(?P<month>\d{2})`)
//	m, _ := p.Search("released 2024-06")
//	y, _ := m.GroupByName("year") // "2024"
func (m *Match) GroupByName(name string) (string, bool) {
	for i, n := range m.names {
		if n != "" && n == name && m.present[i] {
			return m.Group(i), true
		}
	}
	return "", false
}

// String returns the whole-match text.
func (m *Match) String() string {
	return m.Group(0)
}

// Subject returns the text this match was produced from.
func (m *Match) Subject() string {
	return m.subject
}

func (m *Match) check(i int) {
	if i < 0 || i >= len(m.ranges) {
		panic(fmt.Sprintf("unimatch: group index %d out of range [0:%d]", i, len(m.ranges)))
	}
}
