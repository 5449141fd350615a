package formic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSectionMatchIterSingleUnanchored(t *testing.T) {
	s := newSection([]string{"foo"}, true)
	ends := s.matchIter([]string{"a", "foo", "b", "foo"}, 0)
	if got := ends; len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("matchIter = %v, want [2 4]", got)
	}
}

func TestSectionMatchIterSingleBoundStart(t *testing.T) {
	s := newSection([]string{"foo"}, true)
	s.boundStart = true
	if ends := s.matchIter([]string{"foo", "bar"}, 0); len(ends) != 1 || ends[0] != 1 {
		t.Errorf("matchIter = %v, want [1]", ends)
	}
	if ends := s.matchIter([]string{"bar", "foo"}, 0); len(ends) != 0 {
		t.Errorf("matchIter = %v, want []", ends)
	}
}

func TestSectionMatchIterSingleBoundEnd(t *testing.T) {
	s := newSection([]string{"foo"}, true)
	s.boundEnd = true
	if ends := s.matchIter([]string{"bar", "foo"}, 0); len(ends) != 1 || ends[0] != 2 {
		t.Errorf("matchIter = %v, want [2]", ends)
	}
	if ends := s.matchIter([]string{"foo", "bar"}, 0); len(ends) != 0 {
		t.Errorf("matchIter = %v, want []", ends)
	}
}

func TestSectionMatchIterGeneric(t *testing.T) {
	s := newSection([]string{"a", "b"}, true)
	ends := s.matchIter([]string{"x", "a", "b", "y", "a", "b"}, 0)
	if diff := cmp.Diff([]int{3, 6}, ends); diff != "" {
		t.Errorf("matchIter mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionMatchIterGenericBoundStart(t *testing.T) {
	s := newSection([]string{"a", "b"}, true)
	s.boundStart = true
	if ends := s.matchIter([]string{"a", "b", "a", "b"}, 0); len(ends) != 1 || ends[0] != 2 {
		t.Errorf("matchIter = %v, want [2]", ends)
	}
}

func TestSectionString(t *testing.T) {
	s := newSection([]string{"a", "*.go"}, true)
	if got, want := s.String(), "a/*.go"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
