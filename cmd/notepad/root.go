package main

import (
	"fmt"
	"io"
	"os"

	"notepad/internal/config"
	"notepad/internal/log"
	"notepad/internal/notepad"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile string
	debug   bool
	logJSON bool
	logFile string
}

// NewRootCmd creates the root command. Without a subcommand it opens the desktop window.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "notepad [file]",
		Short: "A small plain-text editor",
		Long: `Notepad edits one plain-text file at a time.

Run it without a subcommand for the desktop window, or use 'notepad tui'
for the terminal version. Both share the settings file.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, fileArg(args))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "settings file (default is <user config dir>/notepad/config.json)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write log lines as JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "also append log lines to this file")

	// Add subcommands
	rootCmd.AddCommand(NewGUICmd(opts))
	rootCmd.AddCommand(NewTUICmd(opts))
	rootCmd.AddCommand(NewConfigCmd(opts))

	return rootCmd
}

// configureLogging sets up the package logger. The terminal host owns stdout,
// so it logs only to the log file, if any.
func configureLogging(opts *rootOptions, quiet bool) {
	log.SetDebug(opts.debug)

	var logOpts []log.Option
	if opts.logJSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	switch {
	case quiet && opts.logFile != "":
		logOpts = append(logOpts, log.WithFileOnly(opts.logFile))
	case quiet:
		logOpts = append(logOpts, log.WithOutput(io.Discard))
	case opts.logFile != "":
		logOpts = append(logOpts, log.WithFile(opts.logFile))
	}
	log.Configure(logOpts...)
}

// newState loads the settings and builds the shared editor state.
func newState(opts *rootOptions) *notepad.State {
	store, err := config.NewStore(opts.cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v. Using default settings.\n", err)
	}
	return notepad.New(store)
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
