package domain

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/keyctx/internal/model"
)

var (
	keyLinePattern       = regexp.MustCompile(`(?i)^\s*key\s*=\s*([^;]*?)\s*(?:;.*)?$`)
	typeLinePattern      = regexp.MustCompile(`(?i)^\s*type\s*=\s*(\w+)`)
	variableLinePattern  = regexp.MustCompile(`^\s*\$(\w+)\s*=(?:[^=]|$)`)
	conditionLinePattern = regexp.MustCompile(`(?i)^\s*condition\s*=\s*([^;]*?)\s*(?:;.*)?$`)
	keyPrefixPattern     = regexp.MustCompile(`^Key`)

	detectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$active\d*\s*=\s*[01]`),
		regexp.MustCompile(`\$object_detected\s*=\s*[01]`),
		regexp.MustCompile(`\$mod_enabled\s*=\s*[01]`),
	}
)

// Candidate is what the extractor found in one section body. Line fields are
// indexes into Section.Body, -1 when the line is absent.
type Candidate struct {
	Section       m.Section
	Key           string
	KeyLine       int
	Type          string
	Variable      string
	Condition     string
	ConditionLine int
}

// BindingPredicate decides whether a section with a key line is a binding.
type BindingPredicate func(c Candidate) bool

// AnyKey accepts every section that assigns a key.
func AnyKey() BindingPredicate {
	return func(Candidate) bool { return true }
}

// RequireType accepts sections whose type label equals want, ignoring case.
func RequireType(want string) BindingPredicate {
	return func(c Candidate) bool {
		return strings.EqualFold(c.Type, want)
	}
}

// PredicateFor maps the require_type setting to a predicate; empty means any
// key assignment qualifies.
func PredicateFor(requireType string) BindingPredicate {
	if strings.TrimSpace(requireType) == "" {
		return AnyKey()
	}

	return RequireType(strings.TrimSpace(requireType))
}

// Extractor finds bindings in split documents.
type Extractor struct {
	deny   []string
	accept BindingPredicate
}

// NewExtractor builds an extractor that skips sections matching any deny glob.
func NewExtractor(deny []string, accept BindingPredicate) *Extractor {
	if accept == nil {
		accept = AnyKey()
	}

	return &Extractor{deny: deny, accept: accept}
}

// Denied reports whether a section name is infrastructure, never a binding.
func (e *Extractor) Denied(name string) bool {
	for _, pattern := range e.deny {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

// Inspect scans one section body. ok is false when there is no key line.
func (e *Extractor) Inspect(s m.Section) (Candidate, bool) {
	c := Candidate{Section: s, KeyLine: -1, ConditionLine: -1}

	for i, raw := range s.Body {
		if isComment(raw) {
			continue
		}

		line := trimEOL(raw)

		if c.KeyLine < 0 {
			if match := keyLinePattern.FindStringSubmatch(line); match != nil && match[1] != "" {
				c.Key = match[1]
				c.KeyLine = i

				continue
			}
		}

		if c.Type == "" {
			if match := typeLinePattern.FindStringSubmatch(line); match != nil {
				c.Type = match[1]

				continue
			}
		}

		if c.ConditionLine < 0 {
			if match := conditionLinePattern.FindStringSubmatch(line); match != nil {
				c.Condition = match[1]
				c.ConditionLine = i

				continue
			}
		}

		if c.Variable == "" {
			if match := variableLinePattern.FindStringSubmatch(line); match != nil {
				c.Variable = "$" + match[1]
			}
		}
	}

	return c, c.KeyLine >= 0
}

// Qualifies reports whether the section is a binding source.
func (e *Extractor) Qualifies(s m.Section) (Candidate, bool) {
	if s.IsPreamble() || e.Denied(s.Name) {
		return Candidate{}, false
	}

	c, ok := e.Inspect(s)
	if !ok || !e.accept(c) {
		return Candidate{}, false
	}

	return c, true
}

// Match ties a binding to the section it came from.
type Match struct {
	Index     int // into Document.Sections
	Candidate Candidate
	Binding   m.Binding
}

// Extract returns the bindings of doc in file order, minus those opted out
// with an ignore directive. AssignedKey is left empty for the allocator.
func (e *Extractor) Extract(unit string, doc Document) []Match {
	var matches []Match

	fileRule := fileIgnoreRule(doc)

	for i, s := range doc.Sections {
		c, ok := e.Qualifies(s)
		if !ok {
			continue
		}

		if fileRule.ignores(c.Key) || sectionIgnoreRule(s).ignores(c.Key) {
			continue
		}

		matches = append(matches, Match{
			Index:     i,
			Candidate: c,
			Binding: m.Binding{
				Unit:        unit,
				File:        doc.Path,
				Section:     s.Name,
				OriginalKey: c.Key,
				Variable:    c.Variable,
				Type:        c.Type,
				Condition:   c.Condition,
				Description: describe(s.Name, c.Variable, c.Type),
			},
		})
	}

	return matches
}

func describe(section, variable, kind string) string {
	parts := make([]string, 0, 3)

	if clean := keyPrefixPattern.ReplaceAllString(section, ""); clean != "" {
		parts = append(parts, clean)
	}

	if kind != "" {
		parts = append(parts, "("+kind+")")
	}

	if variable != "" {
		parts = append(parts, "["+variable+"]")
	}

	if len(parts) == 0 {
		return section
	}

	return strings.Join(parts, " ")
}

// HasDetection reports whether text declares a presence variable.
func HasDetection(text string) bool {
	for _, p := range detectionPatterns {
		if p.MatchString(text) {
			return true
		}
	}

	return false
}
