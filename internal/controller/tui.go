package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// TUIOption customises a TUI.
type TUIOption func(*TUI)

// WithInput sets the keyboard source; nil disables input.
func WithInput(r io.Reader) TUIOption {
	return func(t *TUI) {
		t.input = r
	}
}

// TUI implements UI using Bubble Tea for interactive display. The program
// runs in its own goroutine; Display calls are forwarded to it as messages.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	started bool
	mode    StartMode
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, opts ...TUIOption) *TUI {
	t := &TUI{output: output, input: os.Stdin}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start launches the model of the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	t.mode = cfg.mode

	if cfg.mode == ModeApply {
		return t.startWithModel(newApplyModel())
	}

	return t.startWithModel(newUnitsModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	t.group = &errgroup.Group{}
	t.started = true

	program := t.program
	t.group.Go(func() error {
		_, err := program.Run()

		return err
	})

	return nil
}

// ensureStarted starts the model of the current mode if Start was skipped.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(func(c *StartConfig) { c.mode = t.mode })
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Wait blocks until the user quits.
func (t *TUI) Wait() {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	if err := group.Wait(); err != nil {
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	t.Wait()
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayUnits sends the manifest to the units model.
func (t *TUI) DisplayUnits(mf m.Manifest, err error) error {
	t.ensureStarted()
	t.send(unitsMsg{manifest: mf, err: err})

	return err
}

// DisplayFileResult advances the apply progress.
func (t *TUI) DisplayFileResult(result m.FileResult, done, total int) {
	t.ensureStarted()
	t.send(fileMsg{result: result, done: done, total: total})
}

// DisplaySummary switches the apply model to its results view.
func (t *TUI) DisplaySummary(summary m.Summary, err error) error {
	t.ensureStarted()
	t.send(summaryMsg{summary: summary, err: err})

	return err
}

// DisplayRestore prints a one-line result; it needs no program.
func (t *TUI) DisplayRestore(restored, purged int, err error) error {
	line := fmt.Sprintf("Restored %s file(s), purged %s backup(s)",
		accentStyle.Render(fmt.Sprintf("%d", restored)),
		accentStyle.Render(fmt.Sprintf("%d", purged)),
	)

	out := titleStyle.Render("keyctx restore") + "\n" + summaryStyle.Render(line) + "\n"
	if err != nil {
		out += errorStyle.Render(err.Error()) + "\n"
	}

	_, _ = fmt.Fprint(t.output, out)

	return err
}

// DisplayNames prints the id to name mapping.
func (t *TUI) DisplayNames(doc m.DisplayDocument, output, controller m.Path) error {
	_, err := fmt.Fprint(t.output, renderNames(doc, output, controller))

	return err
}

func renderNames(doc m.DisplayDocument, output, controller m.Path) string {
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	rows := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		row := idStyle.Render(fmt.Sprintf("%d", e.ID)) + "  " + nameStyle.Render(e.DisplayName)
		if e.Matched() {
			row += mutedStyle.Render("  ← " + e.UnitName)
		}

		rows = append(rows, row)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))

	where := "display: " + string(output)
	if controller != "" {
		where += "\ncontroller: " + string(controller)
	} else {
		where += "\ncontroller: not found, overlay not installed"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("keyctx display"),
		summaryStyle.Render(fmt.Sprintf("Units: %s", accentStyle.Render(fmt.Sprintf("%d", doc.Total)))),
		box,
		mutedStyle.Padding(1, 2).Render(where),
	) + "\n"
}
