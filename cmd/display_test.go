package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/keyctx/internal/domain"
	m "github.com/mouse-blink/keyctx/internal/model"
)

func TestDisplayCmd(t *testing.T) {
	mockWorkflow, mockUI := withMocks(t)

	result := domain.DisplayResult{
		Document:   m.DisplayDocument{Total: 1, IDToName: map[string]string{"0": "Alice"}},
		Output:     "mods/character_display.json",
		Controller: "mods/mod.ini",
	}

	mockWorkflow.EXPECT().Display(mock.Anything, m.Path("mods")).Return(result, nil)
	mockUI.EXPECT().DisplayNames(result.Document, result.Output, result.Controller).Return(nil)

	cmd, _ := newTestRoot(newDisplayCmd())
	cmd.SetArgs([]string{"display", "mods"})

	require.NoError(t, cmd.Execute())
}

func TestDisplayCmd_Error(t *testing.T) {
	mockWorkflow, _ := withMocks(t)

	mockWorkflow.EXPECT().Display(mock.Anything, m.Path("mods")).Return(domain.DisplayResult{}, assert.AnError)

	cmd, _ := newTestRoot(newDisplayCmd())
	cmd.SetArgs([]string{"display", "mods"})

	assert.ErrorIs(t, cmd.Execute(), assert.AnError)
}
