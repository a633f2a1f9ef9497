package commands

import (
	"github.com/spf13/cobra"

	"edfix/internal/script"
)

// run: the runnable twin of the indent fixture. Output is fixed so it can be
// diffed across runs or against a recorded transcript.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the indentation demo program's output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return script.Run(cmd.OutOrStdout())
		},
	}
}
