package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		full := filepath.Join(root, n)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func TestRunPrintsMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.go", "a_test.go", "sub/b.go")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-i", "**/*.go", "-e", "**/*_test.go", "--no-default-excludes", root}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v (stderr=%s)", err, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "a.go") {
		t.Errorf("expected output to mention a.go, got %q", out)
	}
	if strings.Contains(out, "a_test.go") {
		t.Errorf("expected a_test.go to be excluded, got %q", out)
	}
	if !strings.Contains(out, filepath.Join("sub", "b.go")) {
		t.Errorf("expected output to mention sub/b.go, got %q", out)
	}
}

func TestRunUsageFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--usage"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "Ant Globs") {
		t.Errorf("expected usage text, got %q", stdout.String())
	}
}

func TestRunRejectsMissingDirectory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "does-not-exist")}, &stdout, &stderr)
	if err == nil {
		t.Errorf("expected an error for a nonexistent directory")
	}
}
