package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edfix/internal/domain"
)

// write [name...]: materialize fixtures (default: all) into the workspace.
// The manifest records this write, so a later verify reports any drift an
// editing session left behind.
func writeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write [name...]",
		Short: "Materialize fixtures into the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			var picked []domain.Fixture
			if len(args) == 0 {
				picked = appCtx.Fixtures.All()
			} else {
				for _, name := range args {
					f, ok := appCtx.Fixtures.Get(name)
					if !ok {
						return fmt.Errorf("unknown fixture %q (see: edfix list)", name)
					}
					picked = append(picked, f)
				}
			}

			m, err := appCtx.Workspace.WriteFixtures(picked)
			if err != nil {
				return err
			}
			for _, e := range m.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Fingerprint, e.Filename)
			}
			return nil
		},
	}
}
