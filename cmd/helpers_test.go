package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	controllermocks "github.com/mouse-blink/keyctx/internal/controller/mocks"
	domainmocks "github.com/mouse-blink/keyctx/internal/domain/mocks"
)

// withMocks swaps the package workflow and UI for mocks until the test ends.
func withMocks(t *testing.T) (*domainmocks.MockWorkflow, *controllermocks.MockUI) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	originalWorkflow, originalUI := workflow, ui
	workflow, ui = mockWorkflow, mockUI

	t.Cleanup(func() { workflow, ui = originalWorkflow, originalUI })

	return mockWorkflow, mockUI
}

func newTestRoot(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}
