package main

import (
	"encoding/json"
	"fmt"

	"notepad/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the settings file",
	}

	cmd.AddCommand(newConfigPathCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigResetCmd(opts))
	return cmd
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where settings are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect",
		Long:  `Print the settings in effect. A missing file shows the defaults; a broken one is an error.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			s, err := config.LoadSettingsFile(path)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(s, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(s)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("error encoding settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func newConfigResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			store := config.NewStoreWith(path, config.Defaults())
			if err := store.Reset(); err != nil {
				return fmt.Errorf("error resetting settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings restored to defaults in %s\n", path)
			return nil
		},
	}
}

func settingsPath(opts *rootOptions) (string, error) {
	if opts.cfgFile != "" {
		return opts.cfgFile, nil
	}
	return config.DefaultPath()
}
