package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/keyctx/internal/model"
)

const displayLongDescription = `Read the manifest, name every id using the keyword rules file and write the
display document. When the controller ini exists, its display region is
replaced with an overlay that shows the selected mod's name.`

// displayCmd represents the display command.
var displayCmd = newDisplayCmd()

func newDisplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display [dir]",
		Short: "Generate display names and the overlay region",
		Long:  displayLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.workflow.Display(cmd.Context(), m.Path(root))
			if err != nil {
				return err
			}

			return s.ui.DisplayNames(result.Document, result.Output, result.Controller)
		},
	}
}

func init() {
	rootCmd.AddCommand(displayCmd)
}
