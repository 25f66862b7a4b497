package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// DisplayGenerator turns a manifest into player-facing names and the
// controller region that shows the current selection.
type DisplayGenerator struct {
	planner  *Planner
	rewriter *Rewriter
}

// NewDisplayGenerator shares naming and stripping rules with e.
func NewDisplayGenerator(e *Engine) *DisplayGenerator {
	return &DisplayGenerator{planner: e.Planner(), rewriter: e.Rewriter()}
}

// MatchName returns the display name of the first rule with a keyword
// contained in unit, ignoring case, or unit itself.
func MatchName(unit string, rules []m.NameRule) string {
	lower := strings.ToLower(unit)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.DisplayName
			}
		}
	}

	return unit
}

// Document maps every unit of mf through rules.
func (g *DisplayGenerator) Document(mf m.Manifest, rules m.NameRules) m.DisplayDocument {
	doc := m.DisplayDocument{
		Version:     m.DisplayVersion,
		GeneratedAt: mf.GeneratedAt,
		Total:       mf.TotalUnits,
		IDToName:    make(map[string]string, len(mf.Units)),
		Entries:     make([]m.DisplayEntry, 0, len(mf.Units)),
	}

	for _, u := range mf.Units {
		name := MatchName(u.Name, rules.MatchRules)
		doc.IDToName[strconv.Itoa(u.ID)] = name
		doc.Entries = append(doc.Entries, m.DisplayEntry{
			ID:           u.ID,
			DisplayName:  name,
			UnitName:     u.Name,
			KeyCount:     len(u.Bindings),
			HasDetection: u.HasDetection,
		})
	}

	return doc
}

// Region returns the body of the display region: a selector that cycles in
// step with the units, and an overlay naming the current one.
func (g *DisplayGenerator) Region(doc m.DisplayDocument) []string {
	names := g.planner.ControllerNames()

	lines := []string{"[Constants]"}
	lines = append(lines, g.planner.Declaration(names)...)
	lines = append(lines, "")

	if handlers := g.planner.Handlers(names, doc.Total); len(handlers) > 0 {
		lines = append(lines, handlers...)
		lines = append(lines, "")
	}

	lines = append(lines,
		"[Present]",
		"post run = "+names.ShowCmd,
		"",
		"["+names.ShowCmd+"]",
		fmt.Sprintf("if %s == 1", names.Show),
	)

	for id := 0; id < doc.Total; id++ {
		branch := "else if"
		if id == 0 {
			branch = "if"
		}

		lines = append(lines,
			fmt.Sprintf("    %s %s == %d", branch, names.Variable, id),
			fmt.Sprintf("        post $overlay_text = \"Selected: %s (ID %d)\"", doc.NameFor(id), id),
		)
	}

	if doc.Total > 0 {
		lines = append(lines,
			"    else",
			"        post $overlay_text = \"No unit selected\"",
			"    endif",
		)
	}

	return append(lines, "endif")
}

// Patch replaces any display region in text, of this or an earlier
// generation, with a fresh one at the end of the file.
func (g *DisplayGenerator) Patch(text string, doc m.DisplayDocument) string {
	nl := detectNewline(text)
	stripped, _ := g.rewriter.Strip(text)

	var b strings.Builder

	b.WriteString(stripped)

	if stripped != "" && eolOf(stripped) == "" {
		b.WriteString(nl)
	}

	for _, line := range block(KindDisplay, g.Region(doc), nl) {
		b.WriteString(line)
	}

	return b.String()
}
