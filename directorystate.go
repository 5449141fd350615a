package formic

// DirectoryState tracks, for one PatternSet (either the include set or
// the exclude set) and one visited directory, how each pattern in the
// set currently relates to that directory. Patterns are partitioned
// into four disjoint bags so that a descendant directory only has to
// re-evaluate the patterns that are still "live":
//
//   - matchedInherit: the pattern matches this directory and every
//     descendant (MatchAllSubdirectories); inherited by children
//     without re-evaluation.
//   - matchedAndSubdir: the pattern matches this directory, but
//     descendants must still be tested independently (Match).
//   - matchedNoSubdir: the pattern matches this directory only; no
//     descendant can match it (MatchButNoSubdirectories). It plays no
//     further part once this directory's files are matched.
//   - unmatched: the pattern does not match this directory, but might
//     still match a descendant (NoMatch), and must be re-evaluated
//     there.
//
// Patterns resolving to NoMatchNoSubdirectories are dropped outright:
// they are dead for this entire subtree.
type DirectoryState struct {
	pathElements []string

	matchedInherit   *PatternSet
	matchedAndSubdir *PatternSet
	matchedNoSubdir  *PatternSet
	unmatched        *PatternSet
}

// NewDirectoryState evaluates patterns (the full include or exclude
// set) against pathElements, using candidates — the currently live
// DirectoryStates for this same PatternSet, one per open ancestor
// directory — to locate the true parent. The true parent is the
// candidate whose pathElements is the longest proper prefix of
// pathElements; this is necessary because a directory walk does not
// always visit directories in strict parent-then-child order (e.g.
// after backtracking out of a sibling subtree), so the most recently
// seen state is not always the correct parent.
func NewDirectoryState(patterns *PatternSet, pathElements []string, candidates []*DirectoryState) *DirectoryState {
	parent := findParentState(candidates, pathElements)

	ds := &DirectoryState{
		pathElements:     pathElements,
		matchedInherit:   NewPatternSet(),
		matchedAndSubdir: NewPatternSet(),
		matchedNoSubdir:  NewPatternSet(),
		unmatched:        NewPatternSet(),
	}

	if parent == nil {
		ds.classify(patterns.Patterns(), pathElements)
		return ds
	}

	// matchedInherit carries forward unchanged: once a pattern is
	// guaranteed to match every descendant, no directory below ever
	// needs to re-test it.
	ds.matchedInherit.Extend(parent.matchedInherit)

	ds.classify(parent.matchedAndSubdir.Patterns(), pathElements)
	ds.classify(parent.unmatched.Patterns(), pathElements)
	return ds
}

func findParentState(candidates []*DirectoryState, pathElements []string) *DirectoryState {
	var best *DirectoryState
	bestLen := -1
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if isPathPrefix(c.pathElements, pathElements) && len(c.pathElements) > bestLen {
			best = c
			bestLen = len(c.pathElements)
		}
	}
	return best
}

func isPathPrefix(prefix, full []string) bool {
	if len(prefix) >= len(full) {
		return false
	}
	for i, e := range prefix {
		if full[i] != e {
			return false
		}
	}
	return true
}

func (ds *DirectoryState) classify(patterns []*Pattern, pathElements []string) {
	for _, p := range patterns {
		switch p.MatchDirectory(pathElements) {
		case NoMatchNoSubdirectories:
			// Dead for this entire subtree.
		case MatchAllSubdirectories:
			ds.matchedInherit.Append(p)
		case MatchButNoSubdirectories:
			ds.matchedNoSubdir.Append(p)
		case Match:
			ds.matchedAndSubdir.Append(p)
		case NoMatch:
			ds.unmatched.Append(p)
		}
	}
}

// Match reports, given the set of file names found in this directory,
// which of them are accepted by any pattern that currently applies
// here (matchedInherit, matchedAndSubdir, or matchedNoSubdir).
func (ds *DirectoryState) Match(files map[string]struct{}) map[string]struct{} {
	matched := make(map[string]struct{})
	remaining := make(map[string]struct{}, len(files))
	for f := range files {
		remaining[f] = struct{}{}
	}

	if ds.matchedInherit.AllFiles() && !ds.matchedInherit.Empty() {
		for f := range remaining {
			matched[f] = struct{}{}
		}
		return matched
	}

	ds.matchedInherit.MatchFiles(matched, remaining)
	ds.matchedAndSubdir.MatchFiles(matched, remaining)
	ds.matchedNoSubdir.MatchFiles(matched, remaining)
	return matched
}

// MatchesAllFilesAllSubdirs reports whether every file in every
// descendant of this directory is guaranteed to match: true iff
// matchedInherit contains some pattern that accepts every file name.
// Only matchedInherit is authoritative here — a
// matchedAndSubdir pattern still needs per-descendant re-evaluation,
// so it cannot license this shortcut even if it happens to accept all
// files in the current directory.
func (ds *DirectoryState) MatchesAllFilesAllSubdirs() bool {
	return !ds.matchedInherit.Empty() && ds.matchedInherit.AllFiles()
}

// NoPossibleMatchesInSubdirs reports whether no descendant of this
// directory can possibly match: true iff there is nothing left that
// either already matches every descendant or might still match one.
// matchedNoSubdir patterns don't affect this: by definition they
// cannot match a descendant either way.
func (ds *DirectoryState) NoPossibleMatchesInSubdirs() bool {
	return ds.matchedInherit.Empty() && ds.matchedAndSubdir.Empty() && ds.unmatched.Empty()
}

func (ds *DirectoryState) String() string {
	return "DirectoryState(" + joinPath(ds.pathElements) + ")"
}
