package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pathfinder/internal/version"
)

// newRootCmd builds the command tree. Tests build a fresh one per case so
// flag state never leaks between them.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathfinder [flags] <path>",
		Short: "Print a directory hierarchy as a tree",
		Long: `pathfinder walks a directory recursively, builds an in-memory tree of
its entries and prints it with box-drawing connectors, like tree(1).`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTree,
	}

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to pathfinder.toml (default: search upwards from the working directory)")
	pf.String("ui", "auto", "progress UI mode (auto|on|off)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer size for --trace-mode=ring|both")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")

	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	pf.Bool("sort", false, "sort entries by name instead of directory order")
	pf.Int("max-depth", 0, "descend at most this many levels (0 = unlimited)")
	pf.Int("jobs", 0, "concurrent directory listings (0 = GOMAXPROCS)")
	pf.Bool("no-follow", false, "do not descend into symlinked directories")
	pf.Bool("no-hidden", false, "skip entries whose name starts with '.'")
	pf.Int("max-width", 0, "truncate labels to this many columns (0 = unlimited)")
	pf.Bool("plain", false, "print only the tree, without header or summary")

	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// main runs the root command and exits with status 1 when it fails.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
