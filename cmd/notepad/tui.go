package main

import (
	"fmt"

	"notepad/internal/log"
	"notepad/internal/tui"
	"notepad/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the terminal editor command
func NewTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Start the terminal editor",
		Long: `Start the editor inside the terminal, optionally opening file.

Log output goes to --log-file only, since the editor owns the screen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, fileArg(args))
		},
	}
}

func runTUI(opts *rootOptions, file string) error {
	configureLogging(opts, true)
	state := newState(opts)

	var modelOpts []tui.Option
	w, err := watch.New()
	if err != nil {
		log.Warnf("External change detection disabled: %v", err)
	} else {
		defer w.Stop()
		modelOpts = append(modelOpts, tui.WithWatcher(w))
	}

	m := tui.New(state, modelOpts...)
	if file != "" {
		_ = state.OpenPath(file)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running terminal editor: %w", err)
	}
	return nil
}
