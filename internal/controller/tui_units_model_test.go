package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsModel_Lifecycle(t *testing.T) {
	model := newUnitsModel()

	cmd := model.Init()
	require.NotNil(t, cmd)
	_, ok := cmd().(tickMsg)
	require.True(t, ok, "Init() cmd did not return tickMsg")

	assert.Contains(t, model.View(), "Scanning units")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(unitsModel)

	updated, _ = model.Update(unitsMsg{manifest: testManifest()})
	model = updated.(unitsModel)

	view := model.View()
	assert.Contains(t, view, "keyctx units")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "[detect]")
	assert.Equal(t, 3, model.bindings)
	assert.Len(t, model.warnings, 1)
	assert.Equal(t, 0, model.lastSelected)

	updated, cmd = model.Update(tickMsg(time.Now()))
	model = updated.(unitsModel)
	assert.NotNil(t, cmd, "tick keeps animating once rendered")
	assert.Equal(t, 1, model.animOffset)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(unitsModel)
	assert.Equal(t, 1, model.lastSelected)
	assert.Zero(t, model.animOffset, "selection change restarts the scroll")

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUnitsModel_TickBeforeRender(t *testing.T) {
	_, cmd := newUnitsModel().Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestUnitsModel_Error(t *testing.T) {
	updated, _ := newUnitsModel().Update(unitsMsg{err: errors.New("no units with key bindings found")})

	assert.Contains(t, updated.View(), "no units with key bindings found")
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("abc", 0))
	assert.Equal(t, "abc", truncateToWidth("abc", 3))
	assert.Equal(t, "ab…", truncateToWidth("abcdef", 3))
	assert.Equal(t, "…", truncateToWidth("abcdef", 1))
}

func TestAnimateScroll(t *testing.T) {
	text := "abcdefghij"

	assert.Equal(t, "", animateScroll(text, 0, 0))
	assert.Equal(t, "short", animateScroll("short", 10, 99))
	assert.Equal(t, truncateToWidth(text, 4), animateScroll(text, 4, 2), "pauses before scrolling")
	assert.Equal(t, "bcde", animateScroll(text, 4, 6))

	// The window wraps through the gap back to the start.
	wrapped := animateScroll(text, 4, 5+9)
	assert.Equal(t, 4, lipgloss.Width(wrapped))
	assert.True(t, strings.HasPrefix(wrapped, "j "))
}
