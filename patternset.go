package formic

import "strings"

// PatternSet is an ordered collection of Patterns compiled from one or
// more glob strings. It caches whether some member accepts every file
// name (the "matches all files" fast path used by DirectoryState),
// invalidating that cache whenever the set is mutated.
type PatternSet struct {
	patterns []*Pattern

	allFilesComputed bool
	allFilesCache    bool
}

// NewPatternSet returns an empty PatternSet.
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

// NewPatternSetFromGlobs compiles every glob in globs and collects the
// resulting Patterns (each glob may itself expand to two Patterns; see
// CompilePattern) into a single PatternSet, in order.
func NewPatternSetFromGlobs(globs []string, caseSensitive bool) (*PatternSet, error) {
	ps := NewPatternSet()
	for _, g := range globs {
		compiled, err := CompilePattern(g, caseSensitive)
		if err != nil {
			return nil, err
		}
		ps.Extend(compiled)
	}
	return ps, nil
}

// Append adds a single Pattern to the set.
func (ps *PatternSet) Append(p *Pattern) {
	ps.patterns = append(ps.patterns, p)
	ps.invalidate()
}

// Extend appends every Pattern from other to ps, in order.
func (ps *PatternSet) Extend(other *PatternSet) {
	if other == nil {
		return
	}
	ps.patterns = append(ps.patterns, other.patterns...)
	ps.invalidate()
}

// Remove deletes the first Pattern in ps whose String() equals p's, if
// any.
func (ps *PatternSet) Remove(p *Pattern) {
	target := p.String()
	for i, existing := range ps.patterns {
		if existing.String() == target {
			ps.patterns = append(ps.patterns[:i], ps.patterns[i+1:]...)
			ps.invalidate()
			return
		}
	}
}

func (ps *PatternSet) invalidate() {
	ps.allFilesComputed = false
}

// Empty reports whether the set holds no patterns.
func (ps *PatternSet) Empty() bool {
	return len(ps.patterns) == 0
}

// Len reports how many patterns are in the set.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

// Patterns returns the set's patterns in append order. Callers must
// not mutate the returned slice.
func (ps *PatternSet) Patterns() []*Pattern {
	return ps.patterns
}

// AllFiles reports whether some Pattern in the set accepts every file
// name (i.e. was compiled from a bare directory glob like "dir/" or
// "dir/*"), which is enough on its own to guarantee every file in any
// directory the set currently applies to matches. The result is cached
// until the set is next mutated.
func (ps *PatternSet) AllFiles() bool {
	if ps.allFilesComputed {
		return ps.allFilesCache
	}
	any := false
	for _, p := range ps.patterns {
		if p.AllFiles() {
			any = true
			break
		}
	}
	ps.allFilesCache = any
	ps.allFilesComputed = true
	return any
}

// MatchDirectory returns, for each Pattern in the set in order, its
// MatchType against pathElements.
func (ps *PatternSet) MatchDirectory(pathElements []string) []MatchType {
	out := make([]MatchType, len(ps.patterns))
	for i, p := range ps.patterns {
		out[i] = p.MatchDirectory(pathElements)
	}
	return out
}

// MatchFiles moves every name in unmatched accepted by any Pattern in
// the set into matched.
func (ps *PatternSet) MatchFiles(matched, unmatched map[string]struct{}) {
	for _, p := range ps.patterns {
		if len(unmatched) == 0 {
			return
		}
		p.matchFiles(matched, unmatched)
	}
}

func (ps *PatternSet) String() string {
	parts := make([]string, len(ps.patterns))
	for i, p := range ps.patterns {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
