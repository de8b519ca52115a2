package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/config"
	"github.com/safing/xerand/log"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigSaveCommand())
	return cmd
}

func newConfigSaveCommand() *cobra.Command {
	var settings []string

	cmd := &cobra.Command{
		Use:   "save <path>",
		Short: "Write the loaded config, with changes from --set, to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, setting := range settings {
				key, value, ok := strings.Cut(setting, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected key=value", setting)
				}
				if err := config.SetConfigOptionFromString(key, value); err != nil {
					return err
				}
			}

			if err := config.SaveConfig(args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			log.Infof("xerand: saved config to %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&settings, "set", nil, "set an option before saving, as key=value")
	return cmd
}
