package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	written, err := WriteIfChanged(path, []byte("one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !written {
		t.Error("expected first write to happen")
	}

	written, err = WriteIfChanged(path, []byte("one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written {
		t.Error("expected identical content to be skipped")
	}

	written, err = WriteIfChanged(path, []byte("two"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !written {
		t.Error("expected changed content to be written")
	}

	content, _ := os.ReadFile(path)
	if string(content) != "two" {
		t.Errorf("expected file content 'two', got %q", content)
	}
}

func TestWriteIfChangedMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.md")
	if _, err := WriteIfChanged(path, []byte("x")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}
