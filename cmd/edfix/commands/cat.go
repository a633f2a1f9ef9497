package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cat <name>: print a fixture body exactly as embedded.
func catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <name>",
		Short: "Print a fixture body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := appCtx.Fixtures.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown fixture %q (see: edfix list)", args[0])
			}
			_, err := cmd.OutOrStdout().Write(f.Body)
			return err
		},
	}
}
