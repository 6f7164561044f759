package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/internal/config"
)

var configWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration, or write it with --write",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configWrite != "" {
			if err := config.WriteDefaultConfig(configWrite); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configWrite)
			return err
		}
		content, err := config.DefaultConfigTemplate()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	configCmd.Flags().StringVar(&configWrite, "write", "", "write the default config to this path")
}
