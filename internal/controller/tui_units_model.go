package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("6")
	titleStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(accentColor)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Padding(0, 2)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type unitDelegate struct {
	offset int
}

func (d unitDelegate) Height() int  { return 1 }
func (d unitDelegate) Spacing() int { return 0 }
func (d unitDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d unitDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	unit, ok := item.(unitItem)
	if !ok {
		return
	}

	width := m.Width() - 14 // id (4) + keys (6) + spacing (4)

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(6).Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	label := unit.name
	if unit.detection {
		label += " [detect]"
	}

	name := truncateToWidth(label, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accentColor).Bold(true)
		idStyle = selected.Width(4).Align(lipgloss.Right)
		keyStyle = selected.Width(6).Align(lipgloss.Right)
		nameStyle = selected
		name = animateScroll(label, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		idStyle.Render(fmt.Sprintf("%d", unit.id)),
		keyStyle.Render(fmt.Sprintf("%d", unit.keys)),
		nameStyle.Render(name),
	)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5 // ticks before scrolling starts
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// unitsModel lists the units of a manifest.
type unitsModel struct {
	width        int
	height       int
	unitList     list.Model
	delegate     unitDelegate
	total        int
	bindings     int
	warnings     []string
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newUnitsModel() unitsModel {
	delegate := unitDelegate{}
	unitList := list.New([]list.Item{}, delegate, 80, 20)
	unitList.SetShowPagination(false)
	unitList.SetShowFilter(true)
	unitList.SetShowHelp(false)
	unitList.SetShowTitle(false)
	unitList.SetShowStatusBar(false)
	unitList.FilterInput.Placeholder = "Filter by unit…"

	return unitsModel{
		unitList:     unitList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m unitsModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m unitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.unitList.SetWidth(m.width)

	case tickMsg:
		if m.unitList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.unitList.SetDelegate(m.delegate)

			return m, tick(time.Millisecond * 150)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.unitList, cmd = m.unitList.Update(msg)

		if m.unitList.Index() != m.lastSelected {
			m.lastSelected = m.unitList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.unitList.SetDelegate(m.delegate)
		}

		return m, cmd

	case unitsMsg:
		m = m.handleUnitsMsg(msg)
	}

	return m, cmd
}

func (m unitsModel) handleUnitsMsg(msg unitsMsg) unitsModel {
	m.rendered = true
	m.err = msg.err
	m.total = msg.manifest.TotalUnits
	m.bindings = msg.manifest.BindingCount()
	m.warnings = msg.manifest.Warnings

	items := make([]list.Item, 0, len(msg.manifest.Units))
	for _, u := range msg.manifest.Units {
		items = append(items, unitItem{
			id:        u.ID,
			name:      u.Name,
			keys:      len(u.Bindings),
			detection: u.HasDetection,
		})
	}

	m.unitList.SetItems(items)

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m unitsModel) View() string {
	if !m.rendered {
		return "Scanning units…\n"
	}

	title := titleStyle.Render("keyctx units")

	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", errorStyle.Render(m.err.Error()))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Units: %s   Keys: %s   Warnings: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.bindings)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.warnings))),
	))

	footer := mutedStyle.
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m unitsModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := max(m.height-9, 5)
	// margin (2) + border (2) + padding (2)
	listWidth := max(m.width-6, 20)

	m.unitList.SetHeight(listHeight)
	m.unitList.SetWidth(listWidth)

	headerStyle := mutedStyle.
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%4s  %6s  %s", "ID", "Keys", "Unit"))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.unitList.View()))
}
