package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// mockDirEntry and mockFileInfo let tests describe a tree without
// touching the real filesystem.
type mockFileInfo struct {
	name  string
	isDir bool
	mode  os.FileMode
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	info mockFileInfo
}

func (m mockDirEntry) Name() string               { return m.info.Name() }
func (m mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m mockDirEntry) Type() os.FileMode          { return m.info.Mode().Type() }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

type mockFilesystem struct {
	// dirs maps a "/"-joined path to its entries.
	dirs map[string][]mockDirEntry
	// symlinkTargets maps a symlink path to whether it resolves to a directory.
	symlinkTargets map[string]bool
}

func newMockFilesystem() *mockFilesystem {
	return &mockFilesystem{dirs: map[string][]mockDirEntry{}, symlinkTargets: map[string]bool{}}
}

func (m *mockFilesystem) addDir(path string, entries ...mockDirEntry) {
	m.dirs[filepath.ToSlash(path)] = entries
}

func (m *mockFilesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, ok := m.dirs[filepath.ToSlash(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	out := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out, nil
}

func (m *mockFilesystem) Lstat(name string) (fs.FileInfo, error) {
	return mockFileInfo{name: filepath.Base(name)}, nil
}

func (m *mockFilesystem) Stat(name string) (fs.FileInfo, error) {
	isDir := m.symlinkTargets[filepath.ToSlash(name)]
	return mockFileInfo{name: filepath.Base(name), isDir: isDir}, nil
}

func (m *mockFilesystem) Getwd() (string, error)            { return "/root", nil }
func (m *mockFilesystem) Abs(path string) (string, error)   { return filepath.Join("/root", path), nil }
func (m *mockFilesystem) Platform() string                  { return "posix" }

func dirEntry(name string, isDir bool) mockDirEntry {
	mode := os.FileMode(0)
	if isDir {
		mode |= os.ModeDir
	}
	return mockDirEntry{info: mockFileInfo{name: name, isDir: isDir, mode: mode}}
}

func symlinkEntry(name string) mockDirEntry {
	return mockDirEntry{info: mockFileInfo{name: name, mode: os.ModeSymlink}}
}

func TestWalkVisitsTopDown(t *testing.T) {
	fsys := newMockFilesystem()
	fsys.addDir("root", dirEntry("a", true), dirEntry("b.txt", false))
	fsys.addDir(filepath.Join("root", "a"), dirEntry("c.txt", false))

	var visited []string
	err := Walk(fsys, "root", true, func(dir string, subdirs *[]string, files []string) error {
		visited = append(visited, dir)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{"", "a"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestWalkPruneSubdir(t *testing.T) {
	fsys := newMockFilesystem()
	fsys.addDir("root", dirEntry("keep", true), dirEntry("skip", true))
	fsys.addDir(filepath.Join("root", "keep"), dirEntry("k.txt", false))
	fsys.addDir(filepath.Join("root", "skip"), dirEntry("s.txt", false))

	var visited []string
	err := Walk(fsys, "root", true, func(dir string, subdirs *[]string, files []string) error {
		visited = append(visited, dir)
		if dir == "" {
			filtered := (*subdirs)[:0]
			for _, d := range *subdirs {
				if d != "skip" {
					filtered = append(filtered, d)
				}
			}
			*subdirs = filtered
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	sort.Strings(visited)
	if len(visited) != 2 || visited[0] != "" || visited[1] != "keep" {
		t.Errorf("visited = %v, want [\"\" keep]", visited)
	}
}

func TestWalkSymlinkHandling(t *testing.T) {
	fsys := newMockFilesystem()
	fsys.addDir("root", symlinkEntry("link"))
	fsys.addDir(filepath.Join("root", "link"), dirEntry("inner.txt", false))
	fsys.symlinkTargets[filepath.ToSlash(filepath.Join("root", "link"))] = true

	var gotFiles []string
	var gotDirs []string
	err := Walk(fsys, "root", true, func(dir string, subdirs *[]string, files []string) error {
		gotFiles = append(gotFiles, files...)
		gotDirs = append(gotDirs, *subdirs...)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(gotDirs) != 1 || gotDirs[0] != "link" {
		t.Errorf("expected symlink to be followed as a directory, gotDirs=%v", gotDirs)
	}

	var noFollowFiles []string
	var noFollowDirs []string
	err = Walk(fsys, "root", false, func(dir string, subdirs *[]string, files []string) error {
		noFollowFiles = append(noFollowFiles, files...)
		noFollowDirs = append(noFollowDirs, *subdirs...)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(noFollowFiles) != 0 || len(noFollowDirs) != 0 {
		t.Errorf("expected symlink to be skipped entirely when not following, files=%v dirs=%v", noFollowFiles, noFollowDirs)
	}
}
