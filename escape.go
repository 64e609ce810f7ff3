package unimatch

import (
	"strings"

	"github.com/coregx/unimatch/engine"
)

// MetaChars is the fixed set of characters that require a backslash
// prefix to be matched literally inside a pattern.
const MetaChars = `-[]/{}()*+?.\^$|`

// metaClass matches any single character from MetaChars. The `-` leads
// the class so it reads as a literal, and `]`, `[`, `\` are escaped.
const metaClass = `[-\[\]/{}()*+?.\\^$|]`

// Escaper produces copies of arbitrary text safe for literal inclusion
// in a pattern. It owns its compiled metacharacter pattern, making the
// engine dependency explicit instead of hiding it in package state.
//
// Escaping is deliberately not idempotent: `\` is itself a
// metacharacter, so escaping already-escaped text escapes the inserted
// backslashes again (`\.` becomes `\\\.`). Escape exactly once.
type Escaper struct {
	meta *Pattern
}

// NewEscaper builds an Escaper on the default engine backend.
func NewEscaper(flags engine.Flags) (*Escaper, error) {
	meta, err := Compile(metaClass, flags)
	if err != nil {
		return nil, err
	}
	return &Escaper{meta: meta}, nil
}

// NewEscaperEngine builds an Escaper over a pre-compiled handle for the
// metacharacter class; it must match one character per match. This exists
// for callers routing everything through a non-default engine.
func NewEscaperEngine(eng engine.Engine) *Escaper {
	return &Escaper{meta: CompileEngine(eng)}
}

// Escape returns text with every metacharacter preceded by exactly one
// backslash and every other character copied verbatim. Text containing
// no metacharacters is returned unchanged.
//
// Example:
//
//	e, _ := unimatch.NewEscaper(engine.FlagNone)
//	e.Escape("a.b*c") // `a\.b\*c`
func (e *Escaper) Escape(text string) string {
	matches := e.meta.FindAll(text)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches))
	last := 0
	for _, m := range matches {
		r := m.Range(0)
		b.WriteString(text[last:r.Start.Offset])
		b.WriteByte('\\')
		b.WriteString(r.Slice(text))
		last = r.End.Offset
	}
	b.WriteString(text[last:])
	return b.String()
}

// defaultEscaper backs the package-level Escape. Built once at init and
// never mutated afterwards.
var defaultEscaper = &Escaper{meta: MustCompile(metaClass, engine.FlagNone)}

// Escape escapes text with the default Escaper.
//
// Example:
//
//	unimatch.Escape("1+1=2") // `1\+1=2`
func Escape(text string) string {
	return defaultEscaper.Escape(text)
}
