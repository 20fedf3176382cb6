package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.2.3", "", "", "steel 1.2.3"},
		{"1.2.3", "abc123", "", "steel 1.2.3 (abc123)"},
		{"1.2.3", "abc123", "2024-01-15", "steel 1.2.3 (abc123, 2024-01-15)"},
		{"1.2.3-rc.1", "", "2024-01-15", "steel 1.2.3-rc.1 (2024-01-15)"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := Info(false); got != tt.want {
			t.Errorf("Info(false) = %q, want %q", got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = origVersion, origNoColor }()

	color.NoColor = true
	Version = "0.1.0-dev"
	if got := Colored(); got != "0.1.0-dev" {
		t.Errorf("Colored() without color = %q", got)
	}

	color.NoColor = false
	got := Colored()
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored() = %q", got)
	}

	Version = "nightly"
	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() for non-semver = %q", got)
	}
}
