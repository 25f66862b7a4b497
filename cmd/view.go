package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/keyctx/internal/controller"
	m "github.com/mouse-blink/keyctx/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [manifest]",
		Short: "View a previously written manifest",
		Long:  "View a previously written manifest, by default the one configured for the working directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, ".")
			if err != nil {
				return err
			}
			defer s.close()

			path := s.cfg.Manifest
			if len(args) > 0 {
				path = args[0]
			}

			if err := s.ui.Start(controller.WithListMode()); err != nil {
				return err
			}

			mf, err := s.workflow.View(m.Path(filepath.Clean(path)))
			err = s.ui.DisplayUnits(mf, err)
			s.ui.Wait()

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
