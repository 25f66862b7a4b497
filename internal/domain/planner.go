package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// Triggers are the keys that drive the selector handlers.
type Triggers struct {
	Next   string
	Prev   string
	Toggle string
}

// PlannerOptions select naming and scope of the generated selector.
type PlannerOptions struct {
	Scope    m.SelectorScope
	Prefix   string // local scope: "$<prefix><id>"
	Global   string // global scope: "$<global>"
	Triggers Triggers
}

// SelectorNames are the identifiers generated for one unit.
type SelectorNames struct {
	Variable  string
	Show      string
	Next      string
	Prev      string
	Toggle    string
	NextCmd   string
	PrevCmd   string
	ToggleCmd string
	ShowCmd   string
}

// SectionPlan describes the in-place rewrite of one binding section.
type SectionPlan struct {
	Index         int // into Document.Sections
	KeyLine       int
	NewKey        string
	Remap         bool
	ConditionLine int // -1 when the section has no condition line
	Predicate     string
	Condition     string // full condition used when a line is inserted
}

// FilePlan is everything the rewriter injects into one file.
type FilePlan struct {
	Path        m.Path
	Declaration []string
	Handlers    []string
	Sections    []SectionPlan
}

// Empty reports whether the plan injects nothing.
func (p FilePlan) Empty() bool {
	return len(p.Sections) == 0
}

// Planner decides conditions and generated blocks.
type Planner struct {
	opts PlannerOptions
}

// NewPlanner returns a planner for opts.
func NewPlanner(opts PlannerOptions) *Planner {
	return &Planner{opts: opts}
}

// Scope returns the configured selector scope.
func (p *Planner) Scope() m.SelectorScope {
	return p.opts.Scope
}

// Names returns the generated identifiers for unit id. In global scope every
// unit gets the same names.
func (p *Planner) Names(id int) SelectorNames {
	if p.opts.Scope == m.ScopeGlobal {
		return SelectorNames{
			Variable:  "$" + p.opts.Global,
			Show:      "$show_character_ui",
			Next:      "KeySelectDown",
			Prev:      "KeySelectUp",
			Toggle:    "KeySelectToggle",
			NextCmd:   "CommandListSelectDown",
			PrevCmd:   "CommandListSelectUp",
			ToggleCmd: "CommandListSelectToggle",
			ShowCmd:   "CommandListSelectShow",
		}
	}

	return p.namesFor(fmt.Sprintf("%s%d", p.opts.Prefix, id))
}

// ControllerNames returns identifiers for a file that follows the selection
// without owning a unit, such as the display controller.
func (p *Planner) ControllerNames() SelectorNames {
	if p.opts.Scope == m.ScopeGlobal {
		return p.Names(0)
	}

	return p.namesFor(p.opts.Prefix)
}

func (p *Planner) namesFor(stem string) SelectorNames {
	title := strings.ToUpper(stem[:1]) + stem[1:]

	return SelectorNames{
		Variable:  "$" + stem,
		Show:      "$" + stem + "_show",
		Next:      "Key" + title + "Next",
		Prev:      "Key" + title + "Prev",
		Toggle:    "Key" + title + "Toggle",
		NextCmd:   "CommandList" + title + "Next",
		PrevCmd:   "CommandList" + title + "Prev",
		ToggleCmd: "CommandList" + title + "Toggle",
		ShowCmd:   "CommandList" + title + "Show",
	}
}

// Predicate is the generated guard for unit id.
func (p *Planner) Predicate(id int) string {
	return fmt.Sprintf("%s == %d", p.Names(id).Variable, id)
}

// Condition conjoins a pre-existing condition with the generated guard.
func (p *Planner) Condition(existing string, id int) string {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return p.Predicate(id)
	}

	return existing + " && " + p.Predicate(id)
}

// Declaration returns the selector declaration lines for names.
func (p *Planner) Declaration(names SelectorNames) []string {
	return []string{
		"global persist " + names.Variable + " = 0",
		"global persist " + names.Show + " = 0",
	}
}

// Handlers returns the cycling and toggle sections. With no units there is
// nothing to cycle and no lines are returned.
func (p *Planner) Handlers(names SelectorNames, total int) []string {
	if total <= 0 {
		return nil
	}

	last := total - 1
	v := names.Variable
	t := p.opts.Triggers

	var lines []string

	lines = append(lines, trigger(names.Next, t.Next, names.NextCmd)...)
	lines = append(lines,
		"["+names.NextCmd+"]",
		fmt.Sprintf("if %s < %d", v, last),
		fmt.Sprintf("    %s = %s + 1", v, v),
		"else",
		fmt.Sprintf("    %s = 0", v),
		"endif",
		"",
	)
	lines = append(lines, trigger(names.Prev, t.Prev, names.PrevCmd)...)
	lines = append(lines,
		"["+names.PrevCmd+"]",
		fmt.Sprintf("if %s > 0", v),
		fmt.Sprintf("    %s = %s - 1", v, v),
		"else",
		fmt.Sprintf("    %s = %d", v, last),
		"endif",
		"",
	)
	lines = append(lines, trigger(names.Toggle, t.Toggle, names.ToggleCmd)...)
	lines = append(lines,
		"["+names.ToggleCmd+"]",
		fmt.Sprintf("if %s == 0", names.Show),
		fmt.Sprintf("    %s = 1", names.Show),
		"else",
		fmt.Sprintf("    %s = 0", names.Show),
		"endif",
	)

	return lines
}

func trigger(section, key, command string) []string {
	return []string{
		"[" + section + "]",
		"key = " + key,
		"type = standard",
		"run = " + command,
		"",
	}
}

// PlanFile plans the injection for one analysed file of unit id out of total
// units. Files without bindings get an empty plan.
func (p *Planner) PlanFile(fa FileAnalysis, id, total int) FilePlan {
	plan := FilePlan{Path: fa.Path}
	if len(fa.Matches) == 0 {
		return plan
	}

	names := p.Names(id)
	plan.Declaration = p.Declaration(names)
	plan.Handlers = p.Handlers(names, total)

	for _, match := range fa.Matches {
		c := match.Candidate
		plan.Sections = append(plan.Sections, SectionPlan{
			Index:         match.Index,
			KeyLine:       c.KeyLine,
			NewKey:        match.Binding.AssignedKey,
			Remap:         match.Binding.Remapped(),
			ConditionLine: c.ConditionLine,
			Predicate:     p.Predicate(id),
			Condition:     p.Condition(c.Condition, id),
		})
	}

	return plan
}
