package domain

import (
	"sort"

	"github.com/mouse-blink/keyctx/internal/config"
	m "github.com/mouse-blink/keyctx/internal/model"
)

// FileAnalysis is one config file after stripping and extraction.
type FileAnalysis struct {
	Path     m.Path
	Original string
	Stripped Document
	Markers  StripReport
	Matches  []Match
}

// Bindings returns the bindings of the file in section order.
func (fa FileAnalysis) Bindings() []m.Binding {
	out := make([]m.Binding, 0, len(fa.Matches))
	for _, match := range fa.Matches {
		out = append(out, match.Binding)
	}

	return out
}

// UnitAnalysis collects the analysed files of one unit. ID is -1 until the
// unit is allocated, and stays -1 for units without bindings.
type UnitAnalysis struct {
	Name         string
	Root         m.Path
	Files        []FileAnalysis
	HasDetection bool
	ID           int
}

// Bindings returns the bindings of every file in discovery order.
func (u UnitAnalysis) Bindings() []m.Binding {
	var out []m.Binding
	for _, fa := range u.Files {
		out = append(out, fa.Bindings()...)
	}

	return out
}

// HasMarkers reports whether any file carried engine output.
func (u UnitAnalysis) HasMarkers() bool {
	for _, fa := range u.Files {
		if fa.Markers.Found() {
			return true
		}
	}

	return false
}

// Model converts the analysis into the shared unit model.
func (u UnitAnalysis) Model() m.Unit {
	files := make([]m.Path, 0, len(u.Files))
	for _, fa := range u.Files {
		files = append(files, fa.Path)
	}

	return m.Unit{
		Name:                 u.Name,
		Root:                 u.Root,
		Files:                files,
		ID:                   u.ID,
		HasPreexistingMarker: u.HasMarkers(),
		HasDetection:         u.HasDetection,
		Bindings:             u.Bindings(),
	}
}

// FileOutput is the planned content of one file.
type FileOutput struct {
	Path     m.Path
	Original string
	Content  string
	Bindings int
}

// Changed reports whether writing is needed.
func (o FileOutput) Changed() bool {
	return o.Content != o.Original
}

// Engine is the pure text pipeline: strip, split, extract, allocate, plan and
// inject. It performs no I/O.
type Engine struct {
	extractor *Extractor
	allocator *Allocator
	planner   *Planner
	rewriter  *Rewriter
}

// NewEngine wires the pipeline from cfg.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{
		extractor: NewExtractor(cfg.DenySections, PredicateFor(cfg.RequireType)),
		allocator: NewAllocator(cfg.Pool),
		planner: NewPlanner(PlannerOptions{
			Scope:  cfg.Scope,
			Prefix: cfg.SelectorPrefix,
			Global: cfg.GlobalSelector,
			Triggers: Triggers{
				Next:   cfg.Triggers.Next,
				Prev:   cfg.Triggers.Prev,
				Toggle: cfg.Triggers.Toggle,
			},
		}),
		rewriter: NewRewriter(cfg.SelectorPrefix, cfg.GlobalSelector, cfg.StripLegacy),
	}
}

// Planner exposes the naming rules, which the display generator shares.
func (e *Engine) Planner() *Planner {
	return e.planner
}

// Rewriter exposes the stripping rules.
func (e *Engine) Rewriter() *Rewriter {
	return e.rewriter
}

// AnalyzeFile strips baseline and extracts its bindings. original is the
// current file content, kept to decide later whether a write is needed.
func (e *Engine) AnalyzeFile(unit string, path m.Path, original, baseline string) FileAnalysis {
	stripped, report := e.rewriter.Strip(baseline)
	doc := Split(path, stripped)

	return FileAnalysis{
		Path:     path,
		Original: original,
		Stripped: doc,
		Markers:  report,
		Matches:  e.extractor.Extract(unit, doc),
	}
}

// Allocate numbers the units that own bindings, in name order from 0, and
// draws their keys from the pool. The input is not modified; the result
// keeps the input order.
func (e *Engine) Allocate(units []UnitAnalysis) ([]UnitAnalysis, int, []m.Warning) {
	out := make([]UnitAnalysis, len(units))

	var owners []int

	for i, u := range units {
		u.ID = -1
		out[i] = u

		if len(u.Bindings()) > 0 {
			owners = append(owners, i)
		}
	}

	sort.SliceStable(owners, func(a, b int) bool {
		return out[owners[a]].Name < out[owners[b]].Name
	})

	var warnings []m.Warning

	for id, idx := range owners {
		u := out[idx]
		u.ID = id

		allocated, warns := e.allocator.Allocate(u.Name, u.Bindings())
		warnings = append(warnings, warns...)
		u.Files = assign(u.Files, allocated)
		out[idx] = u
	}

	return out, len(owners), warnings
}

// assign copies the allocated bindings back into the matches they came from.
func assign(files []FileAnalysis, allocated []m.Binding) []FileAnalysis {
	out := make([]FileAnalysis, len(files))
	next := 0

	for i, fa := range files {
		matches := make([]Match, len(fa.Matches))
		for j, match := range fa.Matches {
			match.Binding = allocated[next]
			matches[j] = match
			next++
		}

		fa.Matches = matches
		out[i] = fa
	}

	return out
}

// Render plans and injects every file of an allocated unit. Units without
// an id get their stripped content only.
func (e *Engine) Render(u UnitAnalysis, total int) []FileOutput {
	out := make([]FileOutput, 0, len(u.Files))

	for _, fa := range u.Files {
		content := fa.Stripped.Render()
		if u.ID >= 0 {
			content = e.rewriter.Inject(fa.Stripped, e.planner.PlanFile(fa, u.ID, total))
		}

		out = append(out, FileOutput{
			Path:     fa.Path,
			Original: fa.Original,
			Content:  content,
			Bindings: len(fa.Matches),
		})
	}

	return out
}

// Rewrite runs the whole pipeline on a single file that forms its own unit
// with the given id.
func (e *Engine) Rewrite(path m.Path, text string, id, total int) (string, []m.Binding, []m.Warning) {
	fa := e.AnalyzeFile(string(path), path, text, text)

	allocated, warnings := e.allocator.Allocate(string(path), fa.Bindings())
	unit := UnitAnalysis{Name: string(path), Files: assign([]FileAnalysis{fa}, allocated), ID: -1}

	if len(allocated) > 0 {
		unit.ID = id
	}

	return e.Render(unit, total)[0].Content, allocated, warnings
}
