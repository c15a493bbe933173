package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the supported study modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range domain.StudyModes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Mode, m.Label, m.Description)
			}
			return tw.Flush()
		},
	}
}
