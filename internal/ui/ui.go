package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Gateway == nil {
		return fmt.Errorf("ui requires an api gateway")
	}
	if opts.Profiles == nil {
		return fmt.Errorf("ui requires a profile store")
	}
	opts.Context = ctx

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
