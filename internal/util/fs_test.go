package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"a/b\\c:d", "a_b_c_d"},
		{"what? *really*", "what_really"},
		{"__already__underscored__", "already_underscored"},
		{"", "untitled"},
		{"...", "untitled"},
		{strings.Repeat("x", 250), strings.Repeat("x", 200)},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "song.mp3"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Name] = e.IsDir
	}
	if !byName["sub"] {
		t.Error("sub not reported as a directory")
	}
	if isDir, ok := byName["song.mp3"]; !ok || isDir {
		t.Error("song.mp3 missing or reported as a directory")
	}

	if _, err := ListDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("ListDir on a missing directory returned nil error")
	}
}
