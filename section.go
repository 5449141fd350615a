package formic

import "strings"

// section is an ordered, nonempty run of token matchers separated from
// other sections by `**`. boundStart/boundEnd record whether this
// section is the first/last under a `**`-free anchor; Pattern sets
// these after building a section's matchers.
type section struct {
	matchers   []tokenMatcher
	boundStart bool
	boundEnd   bool
	str        string // canonical "a/b/c" form, for equality/hashing/rendering
}

func newSection(elements []string, caseSensitive bool) *section {
	if len(elements) == 0 {
		panic("formic: section requires at least one element")
	}
	matchers := make([]tokenMatcher, len(elements))
	strs := make([]string, len(elements))
	for i, e := range elements {
		matchers[i] = newTokenMatcher(e, caseSensitive)
		strs[i] = matchers[i].String()
	}
	return &section{
		matchers: matchers,
		str:      strings.Join(strs, "/"),
	}
}

func (s *section) length() int {
	return len(s.matchers)
}

func (s *section) String() string {
	return s.str
}

// matchIter returns, in increasing order, every end index e such that
// s.matchers pairwise match pathElements[start..e] for some start >=
// startAt, honoring boundStart (only start==0 admissible) and
// boundEnd (only end==len(pathElements) admissible).
func (s *section) matchIter(pathElements []string, startAt int) []int {
	if len(s.matchers) == 1 {
		return s.matchIterSingle(pathElements, startAt)
	}
	return s.matchIterGeneric(pathElements, startAt)
}

func (s *section) matchIterGeneric(pathElements []string, startAt int) []int {
	length := len(pathElements)
	sectionLen := len(s.matchers)

	var end int
	if s.boundStart {
		end = 1
	} else {
		end = length - sectionLen + 1
	}

	var start int
	if s.boundEnd {
		start = length - sectionLen
	} else {
		start = startAt
	}

	if start > end || start < startAt || end > length-sectionLen+1 {
		return nil
	}

	var results []int
	for index := start; index < end; index++ {
		matched := true
		i := index
		for _, matcher := range s.matchers {
			if !matcher.match(pathElements[i]) {
				matched = false
				break
			}
			i++
		}
		if matched {
			results = append(results, index+sectionLen)
		}
	}
	return results
}

func (s *section) matchIterSingle(pathElements []string, startAt int) []int {
	length := len(pathElements)
	if length == 0 {
		return nil
	}

	var start int
	if s.boundEnd {
		start = length - 1
		if start < startAt {
			return nil
		}
	} else {
		start = startAt
	}

	var end int
	if s.boundStart {
		end = 1
	} else {
		end = length
		if start > end {
			return nil
		}
	}

	var results []int
	matcher := s.matchers[0]
	for index := start; index < end; index++ {
		if matcher.match(pathElements[index]) {
			results = append(results, index+1)
		}
	}
	return results
}
