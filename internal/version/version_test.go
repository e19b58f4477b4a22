package version

import "testing"

func TestString(t *testing.T) {
	t.Cleanup(func() { Version, Commit, BuildDate = "dev", unknown, unknown })

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		expected  string
	}{
		{"local build", "dev", unknown, unknown, "dev"},
		{"release", "v1.2.3", "abc123", "2026-01-01", "v1.2.3 (commit: abc123, built: 2026-01-01)"},
		{"commit only", "v1.2.3", "abc123", unknown, "v1.2.3 (commit: abc123)"},
		{"empty date", "v1.2.3", unknown, "", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildDate = tt.version, tt.commit, tt.buildDate
			if got := String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
