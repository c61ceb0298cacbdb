package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, version, commit, date string) {
	t.Helper()
	prevVersion, prevCommit, prevDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = prevVersion, prevCommit, prevDate })
	Version, GitCommit, BuildDate = version, commit, date
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"dev build", "dev", "abc123", "2026-01-01", "dev"},
		{"no commit", "v1.0.0", "unknown", "unknown", "v1.0.0"},
		{"commit only", "v1.0.0", "abc123", "unknown", "v1.0.0 (abc123)"},
		{"full", "v1.0.0", "abc123", "2026-01-01", "v1.0.0 (abc123, built 2026-01-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit, tt.date)
			require.Equal(t, tt.want, GetFullVersion())
			require.Equal(t, tt.version, GetVersion())
		})
	}
}
