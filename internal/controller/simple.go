package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no interaction.
func (s *SimpleUI) Wait() {}

// DisplayUnits prints one row per unit followed by its bindings.
func (s *SimpleUI) DisplayUnits(mf m.Manifest, err error) error {
	if err != nil {
		s.printf("list error: %v\n", err)

		return err
	}

	units := newTable([]string{"ID", "Unit", "Selector", "Keys", "Detection"},
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER)

	for _, u := range mf.Units {
		units.Append([]string{strconv.Itoa(u.ID), u.Name, u.Selector, strconv.Itoa(len(u.Bindings)), yesNo(u.HasDetection)})
	}

	units.SetFooter([]string{"", fmt.Sprintf("Total Units %d", mf.TotalUnits), "", strconv.Itoa(mf.BindingCount()), ""})

	bindings := newTable([]string{"ID", "Section", "Key", "Original", "File"},
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT)

	for _, u := range mf.Units {
		for _, b := range u.Bindings {
			bindings.Append([]string{strconv.Itoa(u.ID), b.Section, b.Key, b.OriginalKey, b.File})
		}
	}

	s.printf("\n%s\n%s", units.render(), bindings.render())
	s.warnings(mf.Warnings)

	return nil
}

// DisplayFileResult prints one progress line per file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult, done, total int) {
	line := fmt.Sprintf("[%d/%d] %-9s %s", done, total, result.Status, result.Path)
	if result.Bindings > 0 {
		line += fmt.Sprintf(" (%d keys)", result.Bindings)
	}

	if result.Err != nil {
		line += ": " + result.Err.Error()
	}

	s.printf("%s\n", line)
}

// DisplaySummary prints the file counts of an apply run and its error, if any.
func (s *SimpleUI) DisplaySummary(summary m.Summary, err error) error {
	table := newTable([]string{"Units", "Keys", "Rewritten", "Unchanged", "Stripped", "Skipped", "Restored"},
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER)
	table.Append([]string{
		strconv.Itoa(summary.Units),
		strconv.Itoa(summary.Bindings),
		strconv.Itoa(summary.Count(m.FileRewritten)),
		strconv.Itoa(summary.Count(m.FileUnchanged)),
		strconv.Itoa(summary.Count(m.FileStripped)),
		strconv.Itoa(summary.Count(m.FileSkipped)),
		strconv.Itoa(summary.Restored),
	})

	s.printf("\n%s", table.render())

	warnings := make([]string, 0, len(summary.Warnings))
	for _, w := range summary.Warnings {
		warnings = append(warnings, w.String())
	}

	s.warnings(warnings)

	if err != nil {
		s.printf("apply error: %v\n", err)

		return err
	}

	s.printf("manifest: %s\n", summary.Manifest)

	return nil
}

// DisplayRestore prints how many files were restored and backups purged.
func (s *SimpleUI) DisplayRestore(restored, purged int, err error) error {
	s.printf("restored %d file(s), purged %d backup(s)\n", restored, purged)

	if err != nil {
		s.printf("restore error: %v\n", err)

		return err
	}

	return nil
}

// DisplayNames prints the display name chosen for every id.
func (s *SimpleUI) DisplayNames(doc m.DisplayDocument, output, controller m.Path) error {
	table := newTable([]string{"ID", "Display Name", "Unit", "Keys"},
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER)

	matched := 0

	for _, e := range doc.Entries {
		table.Append([]string{strconv.Itoa(e.ID), e.DisplayName, e.UnitName, strconv.Itoa(e.KeyCount)})

		if e.Matched() {
			matched++
		}
	}

	table.SetFooter([]string{"", fmt.Sprintf("Matched %d", matched), fmt.Sprintf("Total %d", doc.Total), ""})

	s.printf("\n%s", table.render())
	s.printf("display: %s\n", output)

	if controller == "" {
		s.printf("controller: not found, overlay not installed\n")
	} else {
		s.printf("controller: %s\n", controller)
	}

	return nil
}

func (s *SimpleUI) warnings(warnings []string) {
	for _, w := range warnings {
		s.printf("warning: %s\n", w)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// table buffers a borderless tablewriter table.
type table struct {
	*tablewriter.Table
	buf *bytes.Buffer
}

func newTable(header []string, alignment ...int) table {
	var buf bytes.Buffer

	t := tablewriter.NewWriter(&buf)
	t.SetHeader(header)
	t.SetBorder(false)
	t.SetCenterSeparator("")
	t.SetColumnAlignment(alignment)

	return table{Table: t, buf: &buf}
}

func (t table) render() string {
	t.Render()

	return t.buf.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
