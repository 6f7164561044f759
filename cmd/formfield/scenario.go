package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/plugins/selectfield"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Add a select field, choose its first option, reset, printing every snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		format := cfg.OutputFormat()

		report := func(e host.Event) {
			fmt.Fprintf(out, "--- v%d %s %s\n", e.Snapshot.Version, e.Op, e.Field)
			if err := e.Snapshot.Export(out, format); err != nil {
				logger.Error("export snapshot", "error", err)
			}
		}
		source := sourceFlags{}
		h, err := source.buildHost(report)
		if err != nil {
			return err
		}

		return runScenario(out, h)
	},
}

func runScenario(out io.Writer, h *host.Host) error {
	id, err := h.AddField(selectfield.Type)
	if err != nil {
		return err
	}
	added, _ := h.Snapshot().Schema.Property(id)
	if len(added.Enum) == 0 {
		return fmt.Errorf("scenario: field %s has no options", id)
	}
	if err := h.ValueChanged(id, added.Enum[0]); err != nil {
		return err
	}
	h.Reset()
	_, err = fmt.Fprintf(out, "--- done: %d fields\n", len(h.Fields()))
	return err
}
