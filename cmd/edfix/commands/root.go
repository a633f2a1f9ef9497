package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"edfix/internal/app"
	"edfix/internal/logging"
)

var (
	workspace string
	verbose   bool
	appCtx    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "edfix",
		Short: "Editor indentation and highlighting fixtures",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if workspace == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				workspace = filepath.Join(dir, ".edfix")
			}

			log, err := logging.New(verbose)
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{Workspace: workspace, Logger: log})
			return err
		},
	}

	root.PersistentFlags().StringVar(&workspace, "workspace", "", "fixture dir (default ~/.edfix)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(runCmd(), listCmd(), catCmd(), writeCmd(), verifyCmd())
	return root.Execute()
}
