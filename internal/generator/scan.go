package generator

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// Matcher excludes filenames by exact name or glob pattern.
type Matcher struct {
	names    map[string]bool
	patterns []glob.Glob
}

// NewMatcher builds a matcher from ignore entries. Every entry matches the
// filename spelled the same way; entries that compile as globs also match
// by pattern. An entry that is not a valid glob is only a literal name.
func NewMatcher(entries []string) *Matcher {
	m := &Matcher{names: make(map[string]bool, len(entries))}
	for _, entry := range entries {
		m.names[entry] = true
		g, err := glob.Compile(entry)
		if err != nil {
			slog.Debug("Ignore entry is not a glob, matching literally.", "entry", entry, "error", err)
			continue
		}
		m.patterns = append(m.patterns, g)
	}
	return m
}

// ShouldIgnore reports whether name equals an entry or matches a pattern.
func (m *Matcher) ShouldIgnore(name string) bool {
	if m.names[name] {
		return true
	}
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ScanFiles lists the regular files in dir ending with ext, without
// recursing, in directory enumeration order. Names matched by m are dropped.
func ScanFiles(dir, ext string, m *Matcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), ext)
	})

	return lo.Reject(files, func(name string, _ int) bool {
		if m != nil && m.ShouldIgnore(name) {
			slog.Debug("Ignoring file.", "name", name)
			return true
		}
		return false
	}), nil
}
