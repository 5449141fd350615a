package formic

import (
	"errors"
	"path/filepath"
	"sort"

	"github.com/wolfhong/formic/internal/walk"
)

// FileSet is a compiled include/exclude glob configuration bound to a
// base directory. It performs no work at construction time; every
// traversal happens lazily when Files or QualifiedFiles is ranged
// over, so the same FileSet can be walked repeatedly against a
// directory that changes between calls.
type FileSet struct {
	directory     string
	includes      *PatternSet
	excludes      *PatternSet
	symlinks      bool
	caseSensitive bool
	fsys          walk.Filesystem

	lastErr error
}

// Option configures a FileSet constructed with New.
type Option func(*fileSetConfig)

type fileSetConfig struct {
	directory          string
	includeGlobs       []string
	excludeGlobs       []string
	defaultExcludes    bool
	symlinks           bool
	caseSensitiveOverr *bool
	fsys               walk.Filesystem
}

// Directory sets the base directory the walk starts from. Defaults to
// ".".
func Directory(dir string) Option {
	return func(c *fileSetConfig) { c.directory = dir }
}

// Include adds one or more Ant glob include patterns. At least one
// include pattern is required across all Include calls.
func Include(globs ...string) Option {
	return func(c *fileSetConfig) { c.includeGlobs = append(c.includeGlobs, globs...) }
}

// Exclude adds one or more Ant glob exclude patterns.
func Exclude(globs ...string) Option {
	return func(c *fileSetConfig) { c.excludeGlobs = append(c.excludeGlobs, globs...) }
}

// WithoutDefaultExcludes disables the built-in DefaultExcludes
// pattern set (version-control and housekeeping files), which is
// otherwise always merged into the exclude set.
func WithoutDefaultExcludes() Option {
	return func(c *fileSetConfig) { c.defaultExcludes = false }
}

// WithoutSymlinks stops the walker from following symlinks at all: a
// symlinked directory is not descended into and a symlinked file is
// skipped, matching neither Files nor QualifiedFiles.
func WithoutSymlinks() Option {
	return func(c *fileSetConfig) { c.symlinks = false }
}

// CaseSensitive forces case-sensitive matching regardless of
// platform default.
func CaseSensitive() Option {
	return func(c *fileSetConfig) { b := true; c.caseSensitiveOverr = &b }
}

// CaseInsensitive forces case-insensitive matching regardless of
// platform default.
func CaseInsensitive() Option {
	return func(c *fileSetConfig) { b := false; c.caseSensitiveOverr = &b }
}

// withFilesystem overrides the Filesystem used to walk the directory
// tree; used by tests to supply an in-memory fake.
func withFilesystem(fsys walk.Filesystem) Option {
	return func(c *fileSetConfig) { c.fsys = fsys }
}

// New compiles a FileSet from opts. It returns an *Error if no
// include pattern was given, or if any include/exclude glob fails to
// compile.
func New(opts ...Option) (*FileSet, error) {
	cfg := fileSetConfig{
		directory:       ".",
		defaultExcludes: true,
		symlinks:        true,
		fsys:            walk.DefaultFS{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.includeGlobs) == 0 {
		return nil, newError("formic: at least one include pattern is required")
	}

	caseSensitive := effectiveCaseSensitive(cfg.caseSensitiveOverr)

	includes, err := NewPatternSetFromGlobs(cfg.includeGlobs, caseSensitive)
	if err != nil {
		return nil, wrapError(err, "formic: compiling include patterns")
	}

	excludes, err := NewPatternSetFromGlobs(cfg.excludeGlobs, caseSensitive)
	if err != nil {
		return nil, wrapError(err, "formic: compiling exclude patterns")
	}
	if cfg.defaultExcludes {
		excludes.Extend(DefaultExcludes)
	}

	return &FileSet{
		directory:     cfg.directory,
		includes:      includes,
		excludes:      excludes,
		symlinks:      cfg.symlinks,
		caseSensitive: caseSensitive,
		fsys:          cfg.fsys,
	}, nil
}

// errStopWalk aborts an in-progress walk without signaling a real
// error to the caller; it is the internal plumbing for Files' early
// exit when the consumer's yield returns false.
var errStopWalk = errors.New("formic: walk stopped")

// Files lazily walks the FileSet's directory and yields one
// (relativeDirectory, fileName) pair per matched file, in directory
// visitation order. relativeDirectory uses "/" separators and is ""
// for files directly in the base directory. Returning false from
// yield stops the walk immediately. Any error from the underlying
// filesystem also aborts the walk; call Err after ranging to check
// for one (mirroring bufio.Scanner.Err), since a range-over-func
// iterator has no way to return a value of its own.
func (fset *FileSet) Files(yield func(relDir, file string) bool) {
	fset.lastErr = fset.walk(yield)
}

// Err returns the error, if any, that stopped the most recent walk
// over Files or QualifiedFiles. It is nil if the walk completed
// normally or was stopped early by the consumer returning false.
func (fset *FileSet) Err() error {
	return fset.lastErr
}

// walk drives the traversal, returning any non-stop error from the
// underlying filesystem.
func (fset *FileSet) walk(yield func(relDir, file string) bool) error {
	var includeStack []*DirectoryState
	var excludeStack []*DirectoryState

	err := walk.Walk(fset.fsys, fset.directory, fset.symlinks, func(dir string, subdirs *[]string, files []string) error {
		pathElements := splitPath(dir)

		includeStack = pruneStack(includeStack, pathElements)
		excludeStack = pruneStack(excludeStack, pathElements)

		includeState := NewDirectoryState(fset.includes, pathElements, includeStack)
		excludeState := NewDirectoryState(fset.excludes, pathElements, excludeStack)

		includeStack = append(includeStack, includeState)
		excludeStack = append(excludeStack, excludeState)

		if includeState.NoPossibleMatchesInSubdirs() || excludeState.MatchesAllFilesAllSubdirs() {
			*subdirs = nil
		}

		if len(files) == 0 {
			return nil
		}

		candidate := toFileSet(files)

		var matched map[string]struct{}
		if includeState.MatchesAllFilesAllSubdirs() {
			matched = candidate
		} else {
			matched = includeState.Match(candidate)
		}

		if len(matched) > 0 {
			if excludeState.MatchesAllFilesAllSubdirs() {
				matched = nil
			} else {
				excluded := excludeState.Match(matched)
				for f := range excluded {
					delete(matched, f)
				}
			}
		}

		names := sortedKeys(matched)
		for _, f := range names {
			if !yield(dir, f) {
				return errStopWalk
			}
		}
		return nil
	})

	if errors.Is(err, errStopWalk) {
		return nil
	}
	return err
}

func pruneStack(stack []*DirectoryState, pathElements []string) []*DirectoryState {
	for len(stack) > 0 && !isPathPrefix(stack[len(stack)-1].pathElements, pathElements) {
		stack = stack[:len(stack)-1]
	}
	return stack
}

func toFileSet(files []string) map[string]struct{} {
	out := make(map[string]struct{}, len(files))
	for _, f := range files {
		out[f] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// QualifiedFiles ranges over the same matches as Files, but yields a
// single fully joined path per file: joined onto the base directory
// exactly as configured if absolute is false, or onto the base
// directory made absolute via the configured Filesystem if absolute
// is true.
// Paths use the host OS separator, matching os.File APIs.
func (fset *FileSet) QualifiedFiles(absolute bool) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		base := fset.directory
		if absolute {
			if abs, err := fset.fsys.Abs(fset.directory); err == nil {
				base = abs
			}
		}
		fset.Files(func(relDir, file string) bool {
			rel := file
			if relDir != "" {
				rel = filepath.Join(filepath.FromSlash(relDir), file)
			}
			full := filepath.Join(base, rel)
			return yield(full)
		})
	}
}

func (fset *FileSet) String() string {
	return "FileSet(directory=" + fset.directory +
		", include=[" + fset.includes.String() + "]" +
		", exclude=[" + fset.excludes.String() + "])"
}
