package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pathfinder/internal/arena"
	"pathfinder/internal/fswalk"
	"pathfinder/internal/ui"
)

type walkOutcome struct {
	tree *arena.Tree[fswalk.Entry]
	err  error
}

// buildWithUI runs the walk on a worker goroutine while a spinner on stderr
// follows its progress. Quitting the UI cancels the walk.
func buildWithUI(ctx context.Context, title, path string, opts fswalk.Options) (*arena.Tree[fswalk.Entry], error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan fswalk.Progress, 64)
	outcomeCh := make(chan walkOutcome, 1)

	go func() {
		walkOpts := opts
		walkOpts.Progress = func(p fswalk.Progress) {
			// the UI only shows the latest counts, so a full buffer drops
			select {
			case events <- p:
			default:
			}
		}
		tree, err := fswalk.Build(ctx, path, walkOpts)
		outcomeCh <- walkOutcome{tree: tree, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, events), tea.WithOutput(os.Stderr))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return nil, uiErr
	}
	return outcome.tree, outcome.err
}
