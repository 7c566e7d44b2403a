// Package version holds build metadata for the pathfinder CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Pretty colours the major, minor and patch numbers of v. Anything after
// the patch number ("-dev", "+build.1") is left plain. Colour follows
// fatih/color's global NoColor switch.
func Pretty(v string) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", len(partColors))
	for i, p := range parts {
		parts[i] = partColors[i].Sprint(p)
	}
	return strings.Join(parts, ".") + suffix
}
