package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/keyctx/internal/model"
)

var statusColors = map[model.FileStatus]lipgloss.Color{
	model.FileRewritten: lipgloss.Color("2"),
	model.FileStripped:  lipgloss.Color("3"),
	model.FileUnchanged: lipgloss.Color("8"),
	model.FileSkipped:   lipgloss.Color("1"),
}

type fileDelegate struct {
	offset int
}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	width := m.Width() - 20 // status (10) + keys (6) + spacing (4)

	color, ok := statusColors[file.status]
	if !ok {
		color = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Width(10)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(6).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	label := file.path
	if file.err != nil {
		label += ": " + file.err.Error()
	}

	path := truncateToWidth(label, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accentColor).Bold(true)
		statusStyle = selected.Width(10)
		keyStyle = selected.Width(6).Align(lipgloss.Right)
		pathStyle = selected
		path = animateScroll(label, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statusStyle.Render(string(file.status)),
		keyStyle.Render(fmt.Sprintf("%d", file.bindings)),
		pathStyle.Render(path),
	)
}

// applyModel follows an apply run and lists the files afterwards.
type applyModel struct {
	width           int
	height          int
	progressBar     progress.Model
	progressPercent float64
	currentFile     string
	done            int
	total           int
	files           []fileItem
	fileList        list.Model
	delegate        fileDelegate
	summary         model.Summary
	err             error
	rendered        bool
	finished        bool
	animOffset      int
	lastSelected    int
}

func newApplyModel() applyModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := fileDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter files…"

	return applyModel{
		progressBar:  prog,
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m applyModel) Init() tea.Cmd {
	return tick(time.Millisecond * 100)
}

func (m applyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(m.width-8, 20)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		if m.finished && m.fileList.FilterState() != list.Filtering {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.fileList.SetDelegate(m.delegate)
		}

		return m, tick(time.Millisecond * 150)

	case fileMsg:
		m = m.handleFileMsg(msg)

	case summaryMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.finished = true
		m.rendered = true
		m.progressPercent = 1
	}

	return m, cmd
}

func (m applyModel) handleFileMsg(msg fileMsg) applyModel {
	m.rendered = true
	m.done = msg.done
	m.total = msg.total
	m.currentFile = string(msg.result.Path)

	if msg.total > 0 {
		m.progressPercent = float64(msg.done) / float64(msg.total)
	}

	m.files = append(m.files, fileItem{
		unit:     msg.result.Unit,
		path:     string(msg.result.Path),
		status:   msg.result.Status,
		bindings: msg.result.Bindings,
		err:      msg.result.Err,
	})

	items := make([]list.Item, 0, len(m.files))
	for _, f := range m.files {
		items = append(items, f)
	}

	m.fileList.SetItems(items)

	return m
}

func (m applyModel) handleKeyMsg(msg tea.KeyMsg) (applyModel, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	var cmd tea.Cmd

	m.fileList, cmd = m.fileList.Update(msg)

	if m.fileList.Index() != m.lastSelected {
		m.lastSelected = m.fileList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.fileList.SetDelegate(m.delegate)
	}

	return m, cmd
}

func (m applyModel) View() string {
	if !m.rendered {
		return "Restoring and scanning…\n"
	}

	title := titleStyle.Render("keyctx apply")

	if m.finished {
		return m.viewResults(title)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.done)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	current := lipgloss.NewStyle().Padding(1, 2).Render(mutedStyle.Render(truncateToWidth(m.currentFile, m.width-4)))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent)),
		current,
	)
}

func (m applyModel) viewResults(title string) string {
	s := m.summary

	summary := summaryStyle.Render(fmt.Sprintf(
		"Units: %s   Keys: %s   Rewritten: %s   Unchanged: %s   Stripped: %s   Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", s.Units)),
		accentStyle.Render(fmt.Sprintf("%d", s.Bindings)),
		accentStyle.Render(fmt.Sprintf("%d", s.Count(model.FileRewritten))),
		accentStyle.Render(fmt.Sprintf("%d", s.Count(model.FileUnchanged))),
		accentStyle.Render(fmt.Sprintf("%d", s.Count(model.FileStripped))),
		accentStyle.Render(fmt.Sprintf("%d", s.Count(model.FileSkipped))),
	))

	status := mutedStyle.Padding(0, 2).Render("manifest: " + string(s.Manifest))
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}

	listHeight := max(m.height-10, 5)
	listWidth := max(m.width-6, 20)

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	headers := mutedStyle.
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-10s  %6s  %s", "Status", "Keys", "File"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.fileList.View()))

	footer := mutedStyle.
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, status, box, footer)
}
