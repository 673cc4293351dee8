package main

import "github.com/spf13/cobra"

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [file]",
		Short: "Launch the desktop window",
		Long:  `Launch the desktop editor, optionally opening file. This is also what 'notepad' does on its own.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, fileArg(args))
		},
	}
}
