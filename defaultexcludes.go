package formic

// defaultExcludeGlobs is the standard list of housekeeping and
// version-control artifacts excluded by default, mirroring Apache
// Ant's DEFAULTEXCLUDES. FileSet applies these unless the caller opts
// out; the package-level DefaultExcludes variable is exposed mutable
// so a caller can extend or replace the list process-wide.
var defaultExcludeGlobs = []string{
	"**/*~",
	"**/#*#",
	"**/.#*",
	"**/%*%",
	"**/._*",
	"**/CVS",
	"**/CVS/**/*",
	"**/.cvsignore",
	"**/SCCS",
	"**/SCCS/**/*",
	"**/vssver.scc",
	"**/.svn",
	"**/.svn/**/*",
	"**/.DS_Store",
	"**/.git",
	"**/.git/**/*",
	"**/.gitattributes",
	"**/.gitignore",
	"**/.gitmodules",
	"**/.hg",
	"**/.hg/**/*",
	"**/.hgignore",
	"**/.hgsub",
	"**/.hgsubstate",
	"**/.hgtags",
	"**/.bzr",
	"**/.bzr/**/*",
	"**/.bzrignore",
	"**/__pycache__/**/*",
}

// DefaultExcludes is the live PatternSet applied by every FileSet that
// has not disabled default excludes. Compiled once at package init
// with case-insensitive matching (matching the historical default);
// callers may mutate it (Append/Remove) to change the policy for the
// whole process, or build a FileSet with WithoutDefaultExcludes()
// and supply their own.
var DefaultExcludes *PatternSet

func init() {
	ps, err := NewPatternSetFromGlobs(defaultExcludeGlobs, false)
	if err != nil {
		// defaultExcludeGlobs is a fixed, known-valid literal list.
		panic("formic: invalid built-in default excludes: " + err.Error())
	}
	DefaultExcludes = ps
}
