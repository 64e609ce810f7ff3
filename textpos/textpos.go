// Package textpos converts byte offsets, as reported by a regex engine,
// into positions that carry Unicode-aware coordinates for the subject
// text they were derived from.
//
// A regex engine works in bytes. A Position additionally records how many
// runes (code points) and how many grapheme clusters (user-perceived
// characters, per Unicode Standard Annex #29) precede the offset, so a
// caller can address the subject at whichever granularity it needs.
//
// Positions are only meaningful for the subject they were computed from.
// Comparing positions from two different subjects is a programming error.
package textpos

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Position is a location within a subject string.
//
// Offset is the byte offset, Rune the number of code points before the
// offset, and Cluster the index of the grapheme cluster containing the
// offset (equivalently, the number of cluster boundaries before it).
//
// Example:
//
//	m := textpos.NewMapper("héllo")     // h + e-with-acute (2 bytes) + llo
//	r := m.Map(3, 3)                    // engine matched "llo"
//	println(r.Start.Offset, r.Start.Rune, r.Start.Cluster) // 3, 2, 2
type Position struct {
	Offset  int
	Rune    int
	Cluster int

	aligned bool
}

// ClusterAligned reports whether the position falls on a grapheme cluster
// boundary. A byte-level engine can legitimately report a match boundary
// inside a cluster (pattern "a" matched against "á"); such positions
// keep their exact byte offset and identify the containing cluster, but
// are not aligned.
func (p Position) ClusterAligned() bool {
	return p.aligned
}

// Range is a half-open [Start, End) span within one subject.
// A Range is never inverted; Start == End denotes a zero-width span.
type Range struct {
	Start Position
	End   Position
}

// Empty reports whether the range is zero-width.
func (r Range) Empty() bool {
	return r.Start.Offset == r.End.Offset
}

// Len returns the width of the range in bytes.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// Slice returns the subject bytes spanned by the range. The result is
// byte-exact: it reproduces precisely what the engine matched, even when
// a boundary falls inside a grapheme cluster.
func (r Range) Slice(subject string) string {
	return subject[r.Start.Offset:r.End.Offset]
}

// Mapper translates byte offsets within one subject into Positions.
//
// The mapper keeps a monotonic cursor: mapping ranges in ascending offset
// order (the order every engine yields matches in) walks the subject once
// in total. An offset before the cursor triggers a fresh walk from the
// start, so out-of-order use is slower but still correct.
//
// A Mapper is not safe for concurrent use; each matching call builds its
// own.
type Mapper struct {
	subject string

	// cursor state: the walk has consumed subject[:off], which contains
	// `runes` code points forming `clusters` complete grapheme clusters.
	off      int
	runes    int
	clusters int
	state    int
}

// NewMapper returns a Mapper for subject with its cursor at the start.
func NewMapper(subject string) *Mapper {
	return &Mapper{subject: subject, state: -1}
}

// Map converts an engine-reported (offset, length) byte pair into a Range.
//
// Offsets splitting a UTF-8 code point, negative values, and spans
// exceeding the subject length all panic: they indicate the engine
// violated its contract, and propagating them would corrupt every
// downstream position.
func (m *Mapper) Map(offset, length int) Range {
	if offset < 0 || length < 0 || offset+length > len(m.subject) {
		panic(fmt.Sprintf("textpos: engine reported span [%d:%d] outside subject of %d bytes",
			offset, offset+length, len(m.subject)))
	}
	start := m.positionAt(offset)
	end := m.positionAt(offset + length)
	return Range{Start: start, End: end}
}

// positionAt resolves one byte offset against the cursor.
func (m *Mapper) positionAt(offset int) Position {
	if offset < len(m.subject) && !utf8.RuneStart(m.subject[offset]) {
		panic(fmt.Sprintf("textpos: engine reported offset %d inside a multi-byte code point", offset))
	}
	if offset < m.off {
		// Out-of-order query: restart the walk.
		m.off, m.runes, m.clusters, m.state = 0, 0, 0, -1
	}

	for m.off < offset {
		cluster, _, _, state := uniseg.FirstGraphemeClusterInString(m.subject[m.off:], m.state)
		end := m.off + len(cluster)
		if end <= offset {
			m.off = end
			m.runes += utf8.RuneCountInString(cluster)
			m.clusters++
			m.state = state
			continue
		}
		// Offset falls inside this cluster. Leave the cursor at the
		// cluster start so later offsets within it resolve too.
		return Position{
			Offset:  offset,
			Rune:    m.runes + utf8.RuneCountInString(cluster[:offset-m.off]),
			Cluster: m.clusters,
		}
	}

	return Position{Offset: offset, Rune: m.runes, Cluster: m.clusters, aligned: true}
}

// Subject returns the text this mapper addresses.
func (m *Mapper) Subject() string {
	return m.subject
}
