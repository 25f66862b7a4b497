package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keyctx/internal/controller"
	m "github.com/mouse-blink/keyctx/internal/model"
)

const listLongDescription = `Show the ids, selectors and key assignments apply would produce, without
writing anything. Backups, when present, are read as the pristine content.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "Preview units and key assignments",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ui.Start(controller.WithListMode()); err != nil {
				return err
			}

			mf, err := s.workflow.List(cmd.Context(), m.Path(root))
			err = s.ui.DisplayUnits(mf, err)
			s.ui.Wait()

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
