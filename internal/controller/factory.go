package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns the Bubble Tea UI on a terminal and plain tables otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), WithInput(cmd.InOrStdin()))
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device. Output redirected to a
// file or pipe is not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
