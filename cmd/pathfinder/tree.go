package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pathfinder/internal/arena"
	"pathfinder/internal/display"
	"pathfinder/internal/fswalk"
)

const treeHeader = "\nTree structure:\n"

// runTree executes the root command: walk args[0] and print it as a tree.
func runTree(cmd *cobra.Command, args []string) (err error) {
	env, err := startRun(cmd, "tree")
	if err != nil {
		return err
	}
	defer env.finish(&err)

	out := cmd.OutOrStdout()
	settings, err := loadSettings(cmd, out)
	if err != nil {
		return err
	}
	tree, err := env.walk(cmd, args[0], settings)
	if err != nil {
		return err
	}

	done := env.timer.Track("render")
	err = renderTree(out, tree, settings)
	done("")
	if err != nil {
		return err
	}
	env.printTimings(cmd, settings)
	return nil
}

// renderTree prints the header, the tree and a tree(1)-style summary line.
// --plain leaves only the tree; --quiet drops the summary.
func renderTree(out io.Writer, tree *arena.Tree[fswalk.Entry], s runSettings) error {
	bw := bufio.NewWriter(out)
	if !s.plain {
		if _, err := bw.WriteString(treeHeader); err != nil {
			return err
		}
	}
	labeler := display.NewLabeler(s.labels)
	if err := tree.WriteTree(bw, labeler.Label); err != nil {
		return err
	}
	if !s.plain && !s.quiet {
		if _, err := fmt.Fprintf(bw, "\n%s\n", summaryLine(tree)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// summaryLine counts everything below the root.
func summaryLine(tree *arena.Tree[fswalk.Entry]) string {
	stats := fswalk.Count(tree)
	if root, ok := tree.Root(); ok && tree.Get(root).Kind == fswalk.KindDir {
		stats.Dirs--
	}
	line := plural(stats.Dirs, "directory", "directories") + ", " + plural(stats.Files, "file", "files")
	if stats.Symlinks > 0 {
		line += ", " + plural(stats.Symlinks, "symlink", "symlinks")
	}
	if stats.Other > 0 {
		line += ", " + plural(stats.Other, "other", "other")
	}
	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
