package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ytstill/internal/job"
	"ytstill/internal/model"
)

// Run launches the interactive flow and blocks until it finishes. The
// returned outcome is nil when the user left before an encode started.
// bubbletea restores the terminal on every exit path, including panics and
// interrupts.
func Run(ctx context.Context, opts model.CLIOptions) (*job.Outcome, error) {
	m := NewModel(ctx, opts)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	if fm.fatalErr != nil {
		return nil, fm.fatalErr
	}
	return fm.outcome, nil
}
