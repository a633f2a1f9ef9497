package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the embedded fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tLANGUAGE\tFILENAME\tPURPOSE")
			for _, f := range appCtx.Fixtures.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Language, f.Filename, f.Purpose)
			}
			return tw.Flush()
		},
	}
}
