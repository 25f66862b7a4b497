package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/keyctx/internal/domain"
	m "github.com/mouse-blink/keyctx/internal/model"
)

func TestRestoreCmd(t *testing.T) {
	for _, purge := range []bool{false, true} {
		mockWorkflow, mockUI := withMocks(t)

		args := []string{"restore", "mods"}
		if purge {
			args = append(args, "--purge")
		}

		mockWorkflow.EXPECT().Restore(mock.Anything, m.Path("mods"), purge).Return(domain.RestoreResult{Restored: 4, Purged: 4}, nil)
		mockUI.EXPECT().DisplayRestore(4, 4, nil).Return(nil)

		cmd, _ := newTestRoot(newRestoreCmd())
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute(), "purge=%v", purge)
	}
}

func TestRestoreCmd_Error(t *testing.T) {
	mockWorkflow, mockUI := withMocks(t)

	boom := errors.New("restore: permission denied")

	mockWorkflow.EXPECT().Restore(mock.Anything, m.Path("."), false).Return(domain.RestoreResult{Restored: 1}, boom)
	mockUI.EXPECT().DisplayRestore(1, 0, boom).Return(boom)

	cmd, _ := newTestRoot(newRestoreCmd())
	cmd.SetArgs([]string{"restore"})

	assert.ErrorIs(t, cmd.Execute(), boom)
}
