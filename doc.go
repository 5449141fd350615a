// Package formic implements an Apache-Ant-style glob engine for
// filesystem traversal. Given a set of include globs, exclude globs,
// and a starting directory, FileSet produces the set of regular files
// in that tree satisfying (any include matches) AND NOT (any exclude
// matches).
//
// The glob dialect supports `*`, `?`, and `**` (zero or more
// intervening path components), together with anchored (leading `/`)
// and floating forms, and a directory-shorthand trailing slash. It does
// not support brace or character-class expansion and is not a regular
// expression engine.
//
// The hard engineering is the pattern compiler and incremental
// directory-tree matcher: CompilePattern parses a glob into a
// canonical form, and DirectoryState classifies, for every directory
// visited during a walk, which patterns match it, which might still
// match a descendant, and which are permanently dead for that subtree.
// That classification drives both traversal pruning and file filtering.
package formic
