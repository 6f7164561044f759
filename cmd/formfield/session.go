package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

var sessionSource sourceFlags

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit a form interactively in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := sessionSource.buildHost()
		if err != nil {
			return err
		}
		session, err := tui.New(h,
			tui.WithOutput(cmd.OutOrStdout()),
			tui.WithFormat(cfg.OutputFormat()),
			tui.WithLogger(logger),
			tui.WithTheme(tui.Theme{PromptPrefix: "", InfoPrefix: "· ", ErrorPrefix: "! "}),
		)
		if err != nil {
			return err
		}
		return session.Run(cmd.Context())
	},
}

func init() {
	sessionSource.register(sessionCmd, nil)
}
