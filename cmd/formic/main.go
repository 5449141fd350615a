// Command formic searches the file system using Apache Ant globs and
// prints one matching file path per line.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wolfhong/formic"
	"github.com/wolfhong/formic/internal/logging"
)

const usageText = `Ant Globs
=========

Apache Ant fileset patterns are documented at the Apache Ant project:

  * http://ant.apache.org/manual/dirtasks.html#patterns

Examples
--------

Ant globs are like simple file globs (they use ? and * in the same way), but
include powerful ways for selecting directories. The examples below use Ant
glob naming, so a leading slash represents the top of the search, not the
root of the file system.

    *.go
            Selects every matching file anywhere in the whole tree.
            Matches /foo.go and /bar/foo.go but not /foo.go.bak.

    /*.go
            Selects every matching file in the root of the search directory
            only (not deeper). Matches /foo.go but not /bar/foo.go.

    /myapp/**
            Matches every file under /myapp and below.

    /myapp/**/main.go
            Matches every main.go under /myapp and below.

    dir1/main.go
            Selects every main.go in a directory named dir1, anywhere in
            the tree. Matches /dir1/main.go, /a/dir1/main.go and
            /a/b/dir1/main.go but not /dir1/sub/main.go.

    **/dir1/main.go
            Same as above.

    /**/dir1/main.go
            Same as above.

Default excludes
-----------------

formic has built-in patterns that screen out common version-control and
editor housekeeping files and directories (.git, .svn, *~, and similar).
Default excludes can be switched off with --no-default-excludes, for
example:

    $ formic -i "*.go" -e "*_test.go" --no-default-excludes
`

const longDescription = `Search the file system using Apache Ant globs.

For documentation and source code, visit:
  https://github.com/wolfhong/formic`

// version is overridden at build time via -ldflags.
var version = "dev"

type cliOptions struct {
	include          []string
	exclude          []string
	noDefaultExclude bool
	noSymlinks       bool
	insensitive      bool
	relative         bool
	usage            bool
	verbosity        string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts := &cliOptions{verbosity: "info"}

	root := &cobra.Command{
		Use:           "formic [directory]",
		Short:         "Search the file system using Apache Ant globs",
		Long:          longDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.usage {
				fmt.Fprint(stdout, usageText)
				return nil
			}
			directory := "."
			if len(args) == 1 {
				directory = args[0]
			}
			return search(directory, opts, stdout)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	flags := root.Flags()
	flags.StringSliceVarP(&opts.include, "include", "i", nil, "Ant globs to include in the search (defaults to \"*\" if unset)")
	flags.StringSliceVarP(&opts.exclude, "exclude", "e", nil, "Ant globs to exclude from the search")
	flags.BoolVar(&opts.noDefaultExclude, "no-default-excludes", false, "Do not apply the built-in default excludes")
	flags.BoolVar(&opts.noSymlinks, "no-symlinks", false, "Do not follow symlinked directories")
	flags.BoolVar(&opts.insensitive, "insensitive", false, "Match case-insensitively regardless of platform default")
	flags.BoolVarP(&opts.relative, "relative", "r", false, "Print file paths relative to the search directory")
	flags.BoolVar(&opts.usage, "usage", false, "Print additional help on Ant glob syntax and exit")
	flags.StringVar(&opts.verbosity, "verbosity", "info", "Logging verbosity (verbose, info, warning, error, off)")

	return root.Execute()
}

func search(directory string, opts *cliOptions, stdout io.Writer) error {
	logger := logging.New(os.Stderr, logging.ParseVerbosity(opts.verbosity))
	logger.Debug("starting search", "directory", directory, "include", opts.include, "exclude", opts.exclude)

	include := opts.include
	if len(include) == 0 {
		include = []string{"*"}
	}

	fsOpts := []formic.Option{
		formic.Directory(directory),
		formic.Include(include...),
	}
	if len(opts.exclude) > 0 {
		fsOpts = append(fsOpts, formic.Exclude(opts.exclude...))
	}
	if opts.noDefaultExclude {
		fsOpts = append(fsOpts, formic.WithoutDefaultExcludes())
	}
	if opts.noSymlinks {
		fsOpts = append(fsOpts, formic.WithoutSymlinks())
	}
	if opts.insensitive {
		fsOpts = append(fsOpts, formic.CaseInsensitive())
	}

	fileSet, err := formic.New(fsOpts...)
	if err != nil {
		return err
	}

	prefix := directory
	for relDir, file := range fileSet.Files {
		if opts.relative {
			fmt.Fprint(stdout, ".")
		} else {
			fmt.Fprint(stdout, prefix)
		}
		if relDir != "" {
			fmt.Fprint(stdout, string(filepath.Separator), filepath.FromSlash(relDir))
		}
		fmt.Fprint(stdout, string(filepath.Separator), file, "\n")
	}
	if err := fileSet.Err(); err != nil {
		return fmt.Errorf("formic: searching %s: %w", directory, err)
	}
	return nil
}
