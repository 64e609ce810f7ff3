package engine

import (
	"github.com/coregx/coregex"
)

// coregexEngine is the default backend, built on github.com/coregx/coregex.
type coregexEngine struct {
	re       *coregex.Regex
	anchored *coregex.Regex
	pattern  string
	names    []string
}

// Compile compiles pattern with the default coregex backend.
//
// The returned Engine honors the Anchored search option through a twin
// pattern wrapped in `\A(?:…)`, compiled here once: coregex exposes
// stdlib-compatible searching without a per-call anchor flag, and the
// wrapper adds no capture groups, so group numbering is unchanged.
//
// flags is reserved for engine-specific behavior and is currently
// unused by this backend.
func Compile(pattern string, flags Flags) (Engine, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	anchored, err := coregex.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return &coregexEngine{
		re:       re,
		anchored: anchored,
		pattern:  pattern,
		names:    re.SubexpNames(),
	}, nil
}

func (e *coregexEngine) pick(opts SearchOptions) *coregex.Regex {
	if opts&Anchored != 0 {
		return e.anchored
	}
	return e.re
}

func (e *coregexEngine) Find(subject string, opts SearchOptions) (RawMatch, bool) {
	idx := e.pick(opts).FindStringSubmatchIndex(subject)
	if idx == nil {
		return nil, false
	}
	return RawMatch(idx), true
}

func (e *coregexEngine) FindAll(subject string, opts SearchOptions) []RawMatch {
	if opts&Anchored != 0 {
		// An anchored pattern matches at offset 0 or not at all.
		m, ok := e.Find(subject, opts)
		if !ok {
			return nil
		}
		return []RawMatch{m}
	}
	idx := e.re.FindAllStringSubmatchIndex(subject, -1)
	if idx == nil {
		return nil
	}
	matches := make([]RawMatch, len(idx))
	for i, m := range idx {
		matches[i] = RawMatch(m)
	}
	return matches
}

func (e *coregexEngine) NumGroups() int {
	return e.re.NumSubexp()
}

func (e *coregexEngine) GroupNames() []string {
	return e.names
}

func (e *coregexEngine) Pattern() string {
	return e.pattern
}
