package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edfix/internal/domain"
)

// verify: non-zero exit on drift, so it can gate scripted editor tests.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check workspace files against the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks, err := appCtx.Workspace.Verify()
			if err != nil {
				return err
			}

			drifted := 0
			for _, c := range checks {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", c.State, c.Entry.Filename)
				if c.State != domain.CheckOK {
					drifted++
				}
			}
			if drifted > 0 {
				return fmt.Errorf("%d of %d fixtures drifted", drifted, len(checks))
			}
			return nil
		},
	}
}
