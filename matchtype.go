package formic

// MatchType describes how a Pattern relates to a directory and its
// descendants. It is a three-bit field: bit M means the pattern
// matches this directory; bit A means the pattern is guaranteed to
// match every descendant; bit N means no descendant of this directory
// can match this pattern. M and A together mean the entire subtree is
// a guaranteed match; M and N together mean only this directory
// matches and pruning the subtree is safe.
type MatchType int

const (
	bitMatch             MatchType = 1 << 0 // M
	bitAllSubdirectories MatchType = 1 << 1 // A
	bitNoSubdirectories  MatchType = 1 << 2 // N
)

const (
	// NoMatch means the pattern does not match this directory, but
	// might still match a descendant.
	NoMatch MatchType = 0
	// Match means the pattern matches this directory; descendants must
	// be re-evaluated independently.
	Match MatchType = bitMatch
	// MatchAllSubdirectories means the pattern matches this directory
	// and is guaranteed to match every descendant.
	MatchAllSubdirectories MatchType = bitMatch | bitAllSubdirectories
	// MatchButNoSubdirectories means the pattern matches this directory
	// only; no descendant can match it.
	MatchButNoSubdirectories MatchType = bitMatch | bitNoSubdirectories
	// NoMatchNoSubdirectories means the pattern does not match this
	// directory and no descendant can either; the subtree is dead for
	// this pattern.
	NoMatchNoSubdirectories MatchType = bitNoSubdirectories
)

// Matches reports whether the M bit is set.
func (m MatchType) Matches() bool { return m&bitMatch != 0 }

// AllSubdirectories reports whether the A bit is set.
func (m MatchType) AllSubdirectories() bool { return m&bitAllSubdirectories != 0 }

// NoSubdirectories reports whether the N bit is set.
func (m MatchType) NoSubdirectories() bool { return m&bitNoSubdirectories != 0 }

func (m MatchType) String() string {
	switch m {
	case NoMatch:
		return "NO_MATCH"
	case Match:
		return "MATCH"
	case MatchAllSubdirectories:
		return "MATCH_ALL_SUBDIRECTORIES"
	case MatchButNoSubdirectories:
		return "MATCH_BUT_NO_SUBDIRECTORIES"
	case NoMatchNoSubdirectories:
		return "NO_MATCH_NO_SUBDIRECTORIES"
	default:
		return "UNKNOWN_MATCH_TYPE"
	}
}
