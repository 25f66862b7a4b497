package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/keyctx/internal/model"
)

var purgeFlag bool

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [dir]",
		Short: "Put every backed-up file back",
		Long:  "Copy every backup over its original. With --purge the backups are deleted afterwards.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.workflow.Restore(cmd.Context(), m.Path(root), purgeFlag)

			return s.ui.DisplayRestore(result.Restored, result.Purged, err)
		},
	}
	cmd.Flags().BoolVar(&purgeFlag, "purge", false, "delete the backups after restoring")

	return cmd
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
