package generator

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Title != "Table of Contents" {
		t.Errorf("expected Title='Table of Contents', got %q", cfg.Title)
	}
	if cfg.Format != "unordered" {
		t.Errorf("expected Format='unordered', got %q", cfg.Format)
	}
	if !cfg.FileExt {
		t.Error("expected FileExt=true")
	}
	if cfg.Separator != "--" {
		t.Errorf("expected Separator='--', got %q", cfg.Separator)
	}
	if !cfg.FooterEnabled() {
		t.Error("expected footer enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGitHubWikiSidebar(t *testing.T) {
	cfg := GitHubWikiSidebar()

	if cfg.FileExt {
		t.Error("expected FileExt=false for wiki links")
	}
	if cfg.Output != "_Sidebar.md" {
		t.Errorf("expected Output='_Sidebar.md', got %q", cfg.Output)
	}
	want := []string{"_Sidebar.md", "_Footer.md", "Home.md"}
	if !reflect.DeepEqual(cfg.Ignore, want) {
		t.Errorf("Ignore = %q, want %q", cfg.Ignore, want)
	}
}

func TestIgnoreSet(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected []string
	}{
		{
			name:     "output only",
			cfg:      Config{Output: "TOC.md"},
			expected: []string{"TOC.md"},
		},
		{
			name:     "custom footer ignored",
			cfg:      Config{Ignore: []string{"draft-*"}, Footer: "Footer.md", Output: "TOC.md"},
			expected: []string{"draft-*", "Footer.md", "TOC.md"},
		},
		{
			name:     "disabled footer not ignored",
			cfg:      Config{Footer: FooterDisabled, Output: "TOC.md"},
			expected: []string{"TOC.md"},
		},
		{
			name:     "glob characters in output quoted",
			cfg:      Config{Footer: "Foot{er}.md", Output: "TOC[v2].md"},
			expected: []string{`Foot\{er\}.md`, `TOC\[v2\].md`},
		},
		{
			name:     "duplicates removed",
			cfg:      Config{Ignore: []string{"_Sidebar.md", ""}, Output: "_Sidebar.md"},
			expected: []string{"_Sidebar.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IgnoreSet(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("IgnoreSet() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Separator = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty separator")
	}

	cfg = DefaultConfig()
	cfg.Format = "numbered"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}

	cfg = DefaultConfig()
	cfg.Format = "ordered"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".topdown.yaml")
	content := "title: Wiki\nformat: ordered\nfile_ext: false\nignore:\n  - Home.md\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Title != "Wiki" {
		t.Errorf("expected Title='Wiki', got %q", cfg.Title)
	}
	if cfg.Format != "ordered" {
		t.Errorf("expected Format='ordered', got %q", cfg.Format)
	}
	if cfg.FileExt {
		t.Error("expected FileExt=false")
	}
	if cfg.Separator != "--" {
		t.Errorf("expected Separator to keep default, got %q", cfg.Separator)
	}
	if !reflect.DeepEqual(cfg.Ignore, []string{"Home.md"}) {
		t.Errorf("unexpected Ignore %q", cfg.Ignore)
	}
}

func TestLoadConfigKeepsPresetIgnore(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".topdown.yaml")
	if err := os.WriteFile(path, []byte("ignore:\n  - Drafts.md\n  - Home.md\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, GitHubWikiSidebar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"_Sidebar.md", "_Footer.md", "Home.md", "Drafts.md"}
	if !reflect.DeepEqual(cfg.Ignore, want) {
		t.Errorf("Ignore = %q, want %q", cfg.Ignore, want)
	}
	if base := GitHubWikiSidebar(); len(base.Ignore) != 3 {
		t.Errorf("preset must not be modified, got %q", base.Ignore)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml"), DefaultConfig()); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("title: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad, DefaultConfig()); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()

	if got := FindConfig(dir); got != "" {
		t.Errorf("expected no config, got %q", got)
	}

	path := filepath.Join(dir, ".topdown.yml")
	if err := os.WriteFile(path, []byte("title: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := FindConfig(dir); got != path {
		t.Errorf("FindConfig() = %q, want %q", got, path)
	}

	preferred := filepath.Join(dir, ".topdown.yaml")
	if err := os.WriteFile(preferred, []byte("title: y\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := FindConfig(dir); got != preferred {
		t.Errorf("FindConfig() = %q, want %q", got, preferred)
	}
}
