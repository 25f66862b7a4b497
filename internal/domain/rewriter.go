package domain

import (
	"regexp"
	"sort"
	"strings"

	m "github.com/mouse-blink/keyctx/internal/model"
)

var legacyDeclarationPattern = regexp.MustCompile(`^\s*global\s+persist\s+\$(?:selected_character|show_character_ui)\s*=`)

// Rewriter removes previously generated content and injects a fresh plan.
//
// Strip followed by Inject is idempotent: Strip(Inject(Strip(x))) equals
// Strip(x), so rewriting an already rewritten file reproduces it exactly.
type Rewriter struct {
	legacy bool

	predicateSuffix       *regexp.Regexp
	predicateLine         *regexp.Regexp
	legacyPredicateSuffix *regexp.Regexp
	legacyPredicateLine   *regexp.Regexp
	declaration           *regexp.Regexp
	generatedHeader       *regexp.Regexp
}

// NewRewriter recognises selectors named "$<prefix><n>" and "$<global>".
// When legacy is set, output of earlier generations is stripped as well.
func NewRewriter(prefix, global string, legacy bool) *Rewriter {
	vars := `\$(?:` + regexp.QuoteMeta(prefix) + `\d+|` + regexp.QuoteMeta(global) + `)`
	stems := `(?:` + regexp.QuoteMeta(prefix) + `\d*|Select)`

	return &Rewriter{
		legacy:                legacy,
		predicateSuffix:       regexp.MustCompile(`( && ` + vars + ` == \d+)(?:\s*;.*)?$`),
		predicateLine:         regexp.MustCompile(`^\s*condition = ` + vars + ` == \d+$`),
		legacyPredicateSuffix: regexp.MustCompile(`\s*&&\s*` + vars + `\s*==\s*\d+\s*$`),
		legacyPredicateLine:   regexp.MustCompile(`(?i)^\s*condition\s*=\s*` + vars + `\s*==\s*\d+\s*$`),
		declaration: regexp.MustCompile(
			`^global persist \$(?:` + regexp.QuoteMeta(prefix) + `\d*|` + regexp.QuoteMeta(global) +
				`|show_character_ui)(?:_show)? = 0$`),
		generatedHeader: regexp.MustCompile(
			`(?i)^(?:(?:Key|CommandList)` + stems + `(?:Next|Prev|Toggle|Show|Down|Up)` +
				`|Constants|Present|ShowCharacterName|KeyToggleUI|CommandToggleUI)$`),
	}
}

// Strip removes every generated block and restores binding lines to their
// pre-injection form.
func (r *Rewriter) Strip(text string) (string, StripReport) {
	report := StripReport{}
	lines := splitLines(text)
	out := make([]string, 0, len(lines))

	var (
		open          *region
		pendingLine string
		hasPending  bool
		seams       []int
	)

	for _, raw := range lines {
		content := trimEOL(raw)
		name, isHeader := headerName(raw)

		if open != nil {
			if open.isEnd(content) {
				if open.legacy {
					seams = append(seams, len(out))
				}

				open = nil

				continue
			}

			if !r.abandons(*open, content, name, isHeader) {
				continue
			}

			// Unterminated region: it ends before the first foreign line.
			open = nil
		}

		if isHeader {
			hasPending = false
		}

		if reg, ok := openRegion(content, r.legacy); ok {
			report[reg.kind]++
			open = &reg

			continue
		}

		if r.legacy && legacyDeclarationPattern.MatchString(content) {
			report[KindLegacyDeclaration]++
			seams = append(seams, len(out))

			continue
		}

		if strings.HasPrefix(content, originalLinePrefix) {
			report[KindOriginalKey]++
			pendingLine = strings.TrimPrefix(content, originalLinePrefix)
			hasPending = true

			continue
		}

		if isComment(raw) {
			out = append(out, raw)

			continue
		}

		if hasPending && replaces(pendingLine, content) {
			out = append(out, pendingLine+eolOf(raw))
			hasPending = false

			continue
		}

		if conditionLinePattern.MatchString(content) {
			if kept, kind, stripped := r.stripPredicate(content); stripped {
				report[kind]++

				if kept != "" {
					out = append(out, kept+eolOf(raw))
				}

				continue
			}
		}

		out = append(out, raw)
	}

	return strings.Join(collapseSeams(out, seams), ""), report
}

// replaces reports whether line is the rewritten form of a preserved
// original line: a key line for a key, a condition line for a condition.
func replaces(original, line string) bool {
	if keyLinePattern.MatchString(original) {
		return keyLinePattern.MatchString(line)
	}

	return conditionLinePattern.MatchString(line)
}

// stripPredicate returns the condition line without the generated guard. An
// empty result means the whole line was generated.
func (r *Rewriter) stripPredicate(content string) (string, BlockKind, bool) {
	if r.predicateLine.MatchString(content) {
		return "", KindPredicate, true
	}

	if loc := r.predicateSuffix.FindStringSubmatchIndex(content); loc != nil {
		return content[:loc[2]] + content[loc[3]:], KindPredicate, true
	}

	if !r.legacy {
		return content, "", false
	}

	if r.legacyPredicateLine.MatchString(content) {
		return "", KindLegacyPredicate, true
	}

	if loc := r.legacyPredicateSuffix.FindStringIndex(content); loc != nil {
		return content[:loc[0]], KindLegacyPredicate, true
	}

	return content, "", false
}

// abandons reports whether line cannot belong to the open region, which
// happens when its end marker was deleted by hand.
func (r *Rewriter) abandons(open region, content, name string, isHeader bool) bool {
	if isHeader {
		return !r.generatedHeader.MatchString(name)
	}

	if open.kind == KindSelector {
		return !r.declaration.MatchString(strings.TrimSpace(content))
	}

	return false
}

// collapseSeams limits blank runs touching a seam to two lines. Seams are
// recorded only where legacy output was removed, so blank runs the engine
// itself never touched are preserved.
func collapseSeams(lines []string, seams []int) []string {
	if len(seams) == 0 {
		return lines
	}

	sort.Sort(sort.Reverse(sort.IntSlice(seams)))

	last := -1
	for _, seam := range seams {
		if seam == last || seam > len(lines) {
			continue
		}

		last = seam
		start, end := seam, seam

		for start > 0 && isBlank(lines[start-1]) {
			start--
		}

		for end < len(lines) && isBlank(lines[end]) {
			end++
		}

		if end-start > 2 {
			lines = append(lines[:start+2], lines[end:]...)
		}
	}

	return lines
}

// Inject applies plan to a stripped document.
func (r *Rewriter) Inject(doc Document, plan FilePlan) string {
	if plan.Empty() {
		return doc.Render()
	}

	nl := doc.Newline
	sections := make([]m.Section, len(doc.Sections))
	copy(sections, doc.Sections)

	first := len(sections)

	for _, sp := range plan.Sections {
		sections[sp.Index].Body = rewriteBody(sections[sp.Index].Body, sp, nl)
		if sp.Index < first {
			first = sp.Index
		}
	}

	if len(plan.Handlers) > 0 && first > 0 {
		prev := &sections[first-1]
		prev.Body = appendLines(prev.Body, block(KindHandlers, plan.Handlers, nl)...)
	}

	if ci := constantsIndex(sections); ci >= 0 {
		s := &sections[ci]
		s.Body = appendLines(block(KindSelector, plan.Declaration, nl), s.Body...)
	} else {
		decl := append([]string{"[Constants]"}, plan.Declaration...)
		sections[0].Body = appendLines(block(KindSelector, decl, nl), sections[0].Body...)
	}

	return Document{Path: doc.Path, Newline: nl, Sections: sections}.Render()
}

func rewriteBody(body []string, sp SectionPlan, nl string) []string {
	out := make([]string, 0, len(body)+3)

	for j, raw := range body {
		switch j {
		case sp.KeyLine:
			eol := eolOf(raw)
			indent := leadingSpace(raw)
			inserted := indent + "condition = " + sp.Condition
			insert := sp.ConditionLine < 0

			if insert && eol == "" {
				out = append(out, inserted+nl)
			}

			if sp.Remap {
				out = append(out, originalLinePrefix+trimEOL(raw)+nl, indent+"key = "+sp.NewKey+eol)
			} else {
				out = append(out, raw)
			}

			if insert && eol != "" {
				out = append(out, inserted+eol)
			}
		case sp.ConditionLine:
			content := trimEOL(raw)

			if match := conditionLinePattern.FindStringSubmatch(content); match != nil && match[1] == "" {
				out = append(out, originalLinePrefix+content+nl, leadingSpace(raw)+"condition = "+sp.Predicate+eolOf(raw))
			} else {
				out = append(out, conjoin(content, sp.Predicate)+eolOf(raw))
			}
		default:
			out = append(out, raw)
		}
	}

	return out
}

// conjoin appends predicate to a condition line, ahead of any trailing
// comment and the spacing before it.
func conjoin(line, predicate string) string {
	code, comment := line, ""
	if i := strings.Index(line, ";"); i >= 0 {
		code, comment = line[:i], line[i:]
	}

	expr := strings.TrimRight(code, " \t")

	return expr + " && " + predicate + code[len(expr):] + comment
}

func block(kind BlockKind, lines []string, nl string) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, BeginMarker(kind)+nl)

	for _, line := range lines {
		out = append(out, line+nl)
	}

	return append(out, EndMarker(kind)+nl)
}

func constantsIndex(sections []m.Section) int {
	for i, s := range sections {
		if strings.EqualFold(s.Name, "Constants") && eolOf(s.Header) != "" {
			return i
		}
	}

	return -1
}

func appendLines(dst []string, lines ...string) []string {
	out := make([]string, 0, len(dst)+len(lines))
	out = append(out, dst...)

	return append(out, lines...)
}

func leadingSpace(raw string) string {
	return raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
}
