package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pathfinder/internal/snapshot"
	"pathfinder/internal/trace"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [flags] <path>",
		Short: "Walk a directory and save the tree to a file",
		Long: `snapshot walks path like the root command and writes the resulting tree
to a msgpack file that "pathfinder show" can render later.`,
		Args: cobra.ExactArgs(1),
		RunE: runSnapshot,
	}
	cmd.Flags().StringP("output", "o", "", "snapshot file to write (required)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) (err error) {
	env, err := startRun(cmd, "snapshot")
	if err != nil {
		return err
	}
	defer env.finish(&err)

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if output == "" {
		return errors.New("snapshot: --output is required")
	}

	settings, err := loadSettings(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	tree, err := env.walk(cmd, args[0], settings)
	if err != nil {
		return err
	}

	done := env.timer.Track("save")
	span := trace.Begin(env.tracer, trace.ScopePass, "save", env.span.ID())
	err = snapshot.Save(output, args[0], tree)
	span.End(output)
	done(output)
	if err != nil {
		return err
	}

	if !settings.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d nodes to %s\n", tree.Len(), output)
	}
	env.printTimings(cmd, settings)
	return nil
}
