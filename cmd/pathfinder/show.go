package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pathfinder/internal/snapshot"
	"pathfinder/internal/trace"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [flags] <snapshot>",
		Short: "Render a tree saved by the snapshot command",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	env, err := startRun(cmd, "show")
	if err != nil {
		return err
	}
	defer env.finish(&err)

	out := cmd.OutOrStdout()
	settings, err := loadSettings(cmd, out)
	if err != nil {
		return err
	}

	done := env.timer.Track("load")
	span := trace.Begin(env.tracer, trace.ScopePass, "load", env.span.ID())
	tree, meta, err := snapshot.Load(args[0])
	if err != nil {
		span.End("error")
		done("failed")
		return err
	}
	span.End("")
	done(fmt.Sprintf("%d nodes", tree.Len()))

	if !settings.quiet && !settings.plain {
		fmt.Fprintf(out, "snapshot of %s taken %s\n", meta.Source, meta.Created.Format(time.RFC3339))
	}
	done = env.timer.Track("render")
	err = renderTree(out, tree, settings)
	done("")
	if err != nil {
		return err
	}
	env.printTimings(cmd, settings)
	return nil
}
