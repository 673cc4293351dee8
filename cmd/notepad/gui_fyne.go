//go:build !nogui

package main

import "notepad/internal/gui"

// runGUI builds the window and blocks until it closes
func runGUI(opts *rootOptions, file string) error {
	state := newState(opts)
	app := gui.NewApp(nil, state)

	// Failures are reported in the window
	if file != "" {
		_ = state.OpenPath(file)
	}

	app.Run()
	return nil
}
