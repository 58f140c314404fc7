package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List the catalog routes",
		Args:    cobra.NoArgs,
		Example: `routes list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names() {
				e := catalog[name]
				if _, err := fmt.Fprintf(w, "%s\t%s\n", e.usage, e.description); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
