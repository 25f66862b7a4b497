package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	m "github.com/mouse-blink/keyctx/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

// pendingTick is a scheduled tea.Tick; bubbletea does not cancel it on quit
// and it exits once its timer fires.
var pendingTick = goleak.IgnoreTopFunction("github.com/charmbracelet/bubbletea.Tick.func1")

func newTestTUI(buf *bytes.Buffer) *TUI {
	return NewTUI(buf, WithInput(nil))
}

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), pendingTick)

	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))

	// The program may already be gone; send must not block.
	tui.send(fileMsg{done: 1, total: 2})

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
	assert.NoError(t, tui.Err())
}

func TestTUI_StartIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))
	program := tui.program

	require.NoError(t, tui.Start(WithApplyMode()))
	assert.Same(t, program, tui.program)

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_ApplyLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), pendingTick)

	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	require.NoError(t, tui.Start(WithApplyMode()))

	tui.DisplayFileResult(m.FileResult{Path: "Alice/mod.ini", Status: m.FileRewritten, Bindings: 1}, 1, 1)
	require.NoError(t, tui.DisplaySummary(m.Summary{Units: 1, Bindings: 1}, nil))

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_ListLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), pendingTick)

	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	// Display without Start launches the list model.
	require.NoError(t, tui.DisplayUnits(m.Manifest{TotalUnits: 1, Units: []m.UnitRecord{{Name: "Alice"}}}, nil))
	assert.True(t, tui.started)

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_DisplayErrorsArePassedThrough(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)
	boom := errors.New("boom")

	require.ErrorIs(t, tui.DisplayUnits(m.Manifest{}, boom), boom)
	require.ErrorIs(t, tui.DisplaySummary(m.Summary{}, boom), boom)

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_CloseWithoutStart(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)
	tui.Close()
	tui.Close()

	newTestTUI(&buf).Wait()
}

func TestTUI_DisplayRestore(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	require.NoError(t, tui.DisplayRestore(3, 1, nil))
	assert.Contains(t, buf.String(), "keyctx restore")
	assert.Contains(t, buf.String(), "file(s), purged")

	boom := errors.New("boom")
	require.ErrorIs(t, tui.DisplayRestore(0, 0, boom), boom)
	assert.Contains(t, buf.String(), "boom")
	assert.Nil(t, tui.program, "static output needs no program")
}

func TestTUI_DisplayNames(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	doc := m.DisplayDocument{Total: 2, Entries: []m.DisplayEntry{
		{ID: 0, DisplayName: "Alice the Brave", UnitName: "Alice_v2"},
		{ID: 1, DisplayName: "Bob", UnitName: "Bob"},
	}}

	require.NoError(t, tui.DisplayNames(doc, "out.json", ""))

	output := buf.String()
	assert.Contains(t, output, "Alice the Brave")
	assert.Contains(t, output, "Alice_v2")
	assert.Equal(t, 1, strings.Count(output, "Bob"), "unmatched units show their name once")
	assert.Contains(t, output, "controller: not found")
}
