package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keyctx/internal/controller"
	m "github.com/mouse-blink/keyctx/internal/model"
)

const applyLongDescription = `Restore every file from its backup, then give each mod with key bindings
an id and its own selector, remap its keys from the pool and write the
manifest. Files are backed up before their first rewrite.`

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [dir]",
		Short: "Inject per-mod selectors and remap keys",
		Long:  applyLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ui.Start(controller.WithApplyMode()); err != nil {
				return err
			}

			summary, err := s.workflow.Apply(cmd.Context(), m.Path(root), s.ui.DisplayFileResult)
			err = s.ui.DisplaySummary(summary, err)
			s.ui.Wait()

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
