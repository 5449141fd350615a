package formic

import (
	"regexp"
	"strings"
)

var multiSlashRe = regexp.MustCompile(`/+`)

// Pattern is a single compiled Ant glob: anchored flags, an ordered
// list of sections (runs of literal/wildcard components separated by
// `**`), and a file-name matcher applied to the terminal path
// component.
type Pattern struct {
	boundStart    bool
	boundEnd      bool
	sections      []*section
	filePattern   string
	fileMatcher   tokenMatcher
	caseSensitive bool
}

// CompilePattern compiles a single Ant glob string into a PatternSet.
// Most globs compile to exactly one Pattern; a glob whose directory
// portion ends in `**` (equivalently, one ending in a trailing `/`)
// compiles to two Patterns — the standard form, plus one with the
// terminal section promoted to the file name, so that "dir/" also
// matches a *file* literally named "dir".
func CompilePattern(glob string, caseSensitive bool) (*PatternSet, error) {
	elements, err := simplifyGlob(glob, caseSensitive)
	if err != nil {
		return nil, err
	}

	ps := NewPatternSet()

	if len(elements) > 1 && elements[len(elements)-1] == "**" {
		withTrailing, err := newPattern(cloneStrings(elements), caseSensitive)
		if err != nil {
			return nil, err
		}
		asFile, err := newPattern(cloneStrings(elements[:len(elements)-1]), caseSensitive)
		if err != nil {
			return nil, err
		}
		ps.Append(withTrailing)
		ps.Append(asFile)
		return ps, nil
	}

	p, err := newPattern(elements, caseSensitive)
	if err != nil {
		return nil, err
	}
	ps.Append(p)
	return ps, nil
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// simplifyGlob normalizes a raw glob string into its canonical element
// list:
//  1. a trailing separator becomes a trailing "**";
//  2. a leading separator marks an anchor; otherwise an implicit
//     leading "**" is inserted;
//  3. "." components are dropped and consecutive "**" collapse;
//  4. ".." is a compile-time error;
//  5. components are lowercased when caseSensitive is false.
func simplifyGlob(glob string, caseSensitive bool) ([]string, error) {
	g := strings.ReplaceAll(glob, "\\", "/")
	g = multiSlashRe.ReplaceAllString(g, "/")
	raw := strings.Split(g, "/")

	var simplified []string
	previous := ""
	for _, el := range raw {
		switch {
		case el == "..":
			return nil, newError("invalid glob: cannot have '..' in a glob: %s", glob)
		case el == ".":
			// "." does not contribute to the path.
		case el == "**" && previous == "**":
			// Consecutive "**" collapse to one.
		default:
			simplified = append(simplified, normalizeCase(el, caseSensitive))
			previous = el
		}
	}

	if len(simplified) == 0 {
		return []string{"**"}, nil
	}

	if simplified[len(simplified)-1] == "" {
		if len(simplified) > 1 && simplified[len(simplified)-2] == "**" {
			// "x/**/" is the same as "x/**".
			simplified = simplified[:len(simplified)-1]
		} else {
			simplified[len(simplified)-1] = "**"
		}
	}

	if simplified[0] == "" {
		simplified = simplified[1:]
		if len(simplified) == 0 {
			simplified = []string{"**"}
		}
	} else if simplified[0] != "**" {
		simplified = append([]string{"**"}, simplified...)
	}

	return simplified, nil
}

// newPattern builds a single Pattern from an already-normalized element
// list (elements[0] is either "**" or the first anchored component).
func newPattern(elements []string, caseSensitive bool) (*Pattern, error) {
	if len(elements) == 0 {
		elements = []string{"**"}
	}

	boundStart := elements[0] != "**"

	var filePattern string
	if elements[len(elements)-1] != "**" {
		filePattern = elements[len(elements)-1]
		elements = elements[:len(elements)-1]
	} else {
		filePattern = "*"
	}

	var boundEnd bool
	if len(elements) > 0 {
		boundEnd = elements[len(elements)-1] != "**"
	} else {
		boundEnd = boundStart
	}

	var sections []*section
	var fragment []string
	for _, el := range elements {
		if el == "**" {
			if len(fragment) > 0 {
				sections = append(sections, newSection(fragment, caseSensitive))
				fragment = nil
			}
		} else {
			fragment = append(fragment, el)
		}
	}
	if len(fragment) > 0 {
		sections = append(sections, newSection(fragment, caseSensitive))
	}

	if boundStart && len(sections) > 0 {
		sections[0].boundStart = true
	}
	if boundEnd && len(sections) > 0 {
		sections[len(sections)-1].boundEnd = true
	}

	return &Pattern{
		boundStart:    boundStart,
		boundEnd:      boundEnd,
		sections:      sections,
		filePattern:   filePattern,
		fileMatcher:   newTokenMatcher(filePattern, caseSensitive),
		caseSensitive: caseSensitive,
	}, nil
}

// MatchDirectory runs the multi-section recursive directory match
// against pathElements, which is normalized to this Pattern's case
// policy before matching — callers pass raw, on-disk-cased path
// components.
func (p *Pattern) MatchDirectory(rawPathElements []string) MatchType {
	pathElements := normalizeElements(rawPathElements, p.caseSensitive)
	if len(p.sections) == 0 {
		if p.boundStart {
			if len(pathElements) == 0 {
				return MatchButNoSubdirectories
			}
			return NoMatchNoSubdirectories
		}
		return MatchAllSubdirectories
	}
	return p.matchRecurse(true, p.sections, pathElements, 0)
}

func (p *Pattern) matchRecurse(isStart bool, sections []*section, pathElements []string, location int) MatchType {
	if len(sections) > 0 {
		sec := sections[0]
		anyMatch := false
		for _, end := range sec.matchIter(pathElements, location) {
			anyMatch = true
			m := p.matchRecurse(false, sections[1:], pathElements, end)
			if m.Matches() {
				return m
			}
		}

		if isStart && p.boundStart && !anyMatch {
			// This is the start of the recursion and the pattern is
			// bound to the start of the path; if this section never
			// matched, no subdirectory can help either.
			if len(pathElements) >= sec.length() {
				return NoMatchNoSubdirectories
			}
			if sec.length() > len(pathElements) && len(pathElements) > 0 {
				if !sec.matchers[len(pathElements)-1].match(pathElements[len(pathElements)-1]) {
					return NoMatchNoSubdirectories
				}
			}
			return NoMatch
		}
		return NoMatch
	}

	// Termination after finding a match for every section.
	if len(p.sections) == 1 && p.boundStart && p.boundEnd {
		return MatchButNoSubdirectories
	}
	if p.boundEnd {
		return Match
	}
	return MatchAllSubdirectories
}

// AllFiles reports whether this Pattern's file matcher accepts every
// name (i.e. the glob's directory portion ended in "/" or "/*").
func (p *Pattern) AllFiles() bool {
	return p.filePattern == "*"
}

// matchFiles moves every name in unmatched whose normalized form is
// accepted by the file pattern into matched. matched and unmatched are
// kept disjoint.
func (p *Pattern) matchFiles(matched, unmatched map[string]struct{}) {
	if len(unmatched) == 0 {
		return
	}
	for name := range unmatched {
		normalized := normalizeCase(name, p.caseSensitive)
		if p.fileMatcher.match(normalized) {
			matched[name] = struct{}{}
			delete(unmatched, name)
		}
	}
}

// String renders the Pattern back into Ant-glob syntax; two patterns
// compiled from equal globs under the same case policy render equally.
func (p *Pattern) String() string {
	var start, sectionsStr, end string
	if len(p.sections) > 0 {
		if p.boundStart {
			start = "/"
		} else {
			start = "**/"
		}
		parts := make([]string, len(p.sections))
		for i, s := range p.sections {
			parts[i] = s.String()
		}
		sectionsStr = strings.Join(parts, "/**/")
		if !p.boundEnd {
			end = "/**"
		}
	} else {
		if !p.boundEnd {
			end = "**"
		}
	}
	return start + sectionsStr + end + "/" + p.filePattern
}
