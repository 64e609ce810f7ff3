package engine

import (
	"regexp"
)

// stdlibEngine is an alternative backend over the standard library's
// regexp package, for callers who want the stdlib's RE2 matcher instead
// of the default coregex stack. Semantics are identical.
type stdlibEngine struct {
	re       *regexp.Regexp
	anchored *regexp.Regexp
	names    []string
}

// CompileStdlib compiles pattern with the regexp-backed engine.
// flags is reserved and currently unused by this backend.
func CompileStdlib(pattern string, flags Flags) (Engine, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	anchored, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return &stdlibEngine{
		re:       re,
		anchored: anchored,
		names:    re.SubexpNames(),
	}, nil
}

func (e *stdlibEngine) pick(opts SearchOptions) *regexp.Regexp {
	if opts&Anchored != 0 {
		return e.anchored
	}
	return e.re
}

func (e *stdlibEngine) Find(subject string, opts SearchOptions) (RawMatch, bool) {
	idx := e.pick(opts).FindStringSubmatchIndex(subject)
	if idx == nil {
		return nil, false
	}
	return RawMatch(idx), true
}

func (e *stdlibEngine) FindAll(subject string, opts SearchOptions) []RawMatch {
	if opts&Anchored != 0 {
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

func (e *stdlibEngine) NumGroups() int {
	return e.re.NumSubexp()
}

func (e *stdlibEngine) GroupNames() []string {
	return e.names
}

func (e *stdlibEngine) Pattern() string {
	return e.re.String()
}
