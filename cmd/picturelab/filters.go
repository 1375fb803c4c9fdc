package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
)

func newFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available filters and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range picturelab.FilterNames() {
				usage, params, _ := picturelab.FilterUsage(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, strings.Join(params, ","), usage)
			}
			return tw.Flush()
		},
	}
}
