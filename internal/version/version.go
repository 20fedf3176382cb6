package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the steel CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with major, minor and patch in separate colors.
// The pre-release suffix stays uncolored.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info returns the one-line version banner: version, then commit and build
// date when they are set.
func Info(colored bool) string {
	v := Version
	if colored {
		v = Colored()
	}
	out := "steel " + v
	if GitCommit != "" {
		out += " (" + GitCommit
		if BuildDate != "" {
			out += ", " + BuildDate
		}
		out += ")"
	} else if BuildDate != "" {
		out += " (" + BuildDate + ")"
	}
	return out
}
