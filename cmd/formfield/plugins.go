package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield"
)

var pluginsJSON bool

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the registered field plugins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		menu := formfield.DefaultRegistry().Menu()
		out := cmd.OutOrStdout()

		if pluginsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(menu)
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tLABEL\tICON")
		for _, item := range menu {
			fmt.Fprintf(w, "%s\t%s\t%s\n", item.Type, item.Label, item.Icon.Name)
		}
		return w.Flush()
	},
}

func init() {
	pluginsCmd.Flags().BoolVar(&pluginsJSON, "json", false, "output as JSON")
}
