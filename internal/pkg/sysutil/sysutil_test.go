package sysutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.yaml")

	if err := WriteFileAtomic(path, []byte("theme: dark\n"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "theme: dark\n" {
		t.Errorf("content = %q, want %q", got, "theme: dark\n")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("SUDO_USER", "")
	home, err := UserHome()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.folio/prefs.yaml", filepath.Join(home, ".folio/prefs.yaml")},
		{"/etc/folio.yml", "/etc/folio.yml"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
