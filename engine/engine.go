// Package engine defines the regex engine collaborator consumed by the
// unimatch facade, together with the raw match representation engines
// report in.
//
// The facade never executes patterns itself; it compiles through this
// package and interprets the byte-offset results. Two backends are
// provided: the default one over github.com/coregx/coregex and an
// alternative over the standard library's regexp package. Both expose
// identical semantics, so they are interchangeable behind the Engine
// interface.
package engine

// Flags is an opaque compile-time option bitset passed through to the
// backend uninterpreted. FlagNone is the only value this package assigns
// meaning to; backends may define further bits.
type Flags uint32

// FlagNone requests default compilation behavior.
const FlagNone Flags = 0

// SearchOptions selects per-call search behavior.
type SearchOptions uint32

const (
	// SearchNone performs an unanchored search.
	SearchNone SearchOptions = 0

	// Anchored requires the match to begin at subject offset 0. The
	// match may still end before the subject does; this is a start
	// anchor, not a full-string anchor.
	Anchored SearchOptions = 1 << 0
)

// NotFound is the sentinel offset an engine reports for a capture group
// that did not participate in the match.
const NotFound = -1

// RawMatch is an engine match result: flat [start, end) byte-offset pairs,
// one per capture group, with the whole match as group 0. Unmatched
// optional groups carry NotFound in both slots.
//
// This is the stdlib SubmatchIndex convention; both backends produce it
// natively.
type RawMatch []int

// NumGroups returns the number of entries, counting the whole match.
func (m RawMatch) NumGroups() int {
	return len(m) / 2
}

// Group returns the [start, end) byte offsets of group i.
func (m RawMatch) Group(i int) (start, end int) {
	return m[2*i], m[2*i+1]
}

// Matched reports whether group i participated in the match.
func (m RawMatch) Matched(i int) bool {
	return m[2*i] != NotFound
}

// Engine is a compiled pattern handle.
//
// Implementations must be safe for concurrent use by multiple goroutines;
// both backends in this package are.
type Engine interface {
	// Find returns the leftmost match, honoring opts. The second return
	// is false when the subject contains no match; that is a normal
	// outcome, not an error.
	Find(subject string, opts SearchOptions) (RawMatch, bool)

	// FindAll returns every non-overlapping match in left-to-right
	// order, or nil when there are none. With Anchored set, at most one
	// match (beginning at offset 0) can exist.
	FindAll(subject string, opts SearchOptions) []RawMatch

	// NumGroups returns the number of capture groups in the pattern,
	// not counting the whole match.
	NumGroups() int

	// GroupNames returns the names of the capture groups, indexed like
	// RawMatch groups; entry 0 is always "". The slice is shared and
	// must not be modified.
	GroupNames() []string

	// Pattern returns the pattern text this handle was compiled from.
	Pattern() string
}
