//go:build nogui

package main

import (
	"fmt"
	"os"
)

// runGUI starts the terminal editor in builds without the desktop toolkit
func runGUI(opts *rootOptions, file string) error {
	fmt.Fprintln(os.Stderr, "The desktop window is not available in this build. Starting the terminal editor.")
	return runTUI(opts, file)
}
