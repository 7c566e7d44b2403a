package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathfinder/internal/arena"
	"pathfinder/internal/fswalk"
	"pathfinder/internal/observ"
	"pathfinder/internal/trace"
)

// runEnv is the per-command state shared by every subcommand: the tracer,
// the driver span, phase timings and the profiler/tracer cleanups.
type runEnv struct {
	tracer   trace.Tracer
	span     *trace.Span
	timer    *observ.Timer
	cleanups []func()
}

// startRun enables profiling and tracing for cmd and opens its driver span.
func startRun(cmd *cobra.Command, name string) (*runEnv, error) {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	tracer, stopTracing, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return nil, err
	}
	env := &runEnv{
		tracer:   tracer,
		timer:    observ.NewTimer(),
		cleanups: []func(){stopProfiling, stopTracing},
	}
	env.span = trace.Begin(tracer, trace.ScopeDriver, name, 0)
	cmd.SetContext(trace.WithSpan(cmd.Context(), env.span))
	return env, nil
}

// finish closes the driver span and releases the tracer and profilers.
// It must be deferred directly so it can see a panic: the trace ring is
// dumped before the panic continues.
func (e *runEnv) finish(errp *error) {
	if r := recover(); r != nil {
		e.span.End(fmt.Sprint("panic: ", r))
		dumpRing(e.tracer)
		e.release()
		panic(r)
	}
	detail := ""
	if errp != nil && *errp != nil {
		detail = "error: " + (*errp).Error()
		dumpRing(e.tracer)
	}
	e.span.End(detail)
	e.release()
}

func (e *runEnv) release() {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i]()
	}
	e.cleanups = nil
}

// walk builds the tree for path, behind a spinner when the UI is enabled.
func (e *runEnv) walk(cmd *cobra.Command, path string, s runSettings) (*arena.Tree[fswalk.Entry], error) {
	done := e.timer.Track("walk")
	var (
		tree *arena.Tree[fswalk.Entry]
		err  error
	)
	if !s.quiet && shouldUseTUI(s.ui) {
		tree, err = buildWithUI(cmd.Context(), "walking "+path, path, s.walk)
	} else {
		tree, err = fswalk.Build(cmd.Context(), path, s.walk)
	}
	if err != nil {
		done("failed")
		return nil, err
	}
	done(fmt.Sprintf("%d nodes", tree.Len()))
	return tree, nil
}

// printTimings writes the phase table to stderr when --timings is set.
func (e *runEnv) printTimings(cmd *cobra.Command, s runSettings) {
	if !s.timings {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), e.timer.Summary())
}
