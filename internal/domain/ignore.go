package domain

import (
	"strings"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// ignoreDirective opts bindings out of injection when written as a comment:
//
//	; keyctx:ignore               every binding in scope
//	; keyctx:ignore VK_F1, VK_F2  only bindings on those original keys
//
// In the preamble it covers the whole file, inside a section only that section.
const ignoreDirective = markerTag + ":ignore"

type ignoreRule struct {
	all  bool
	keys map[string]struct{}
}

func (r ignoreRule) ignores(key string) bool {
	if r.all {
		return true
	}

	if len(r.keys) == 0 {
		return false
	}

	_, ok := r.keys[strings.ToLower(strings.TrimSpace(key))]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.keys = nil

		return
	}

	if dst.all || len(src.keys) == 0 {
		return
	}

	if dst.keys == nil {
		dst.keys = make(map[string]struct{}, len(src.keys))
	}

	for key := range src.keys {
		dst.keys[key] = struct{}{}
	}
}

func parseIgnoreDirective(raw string) (ignoreRule, bool) {
	if !isComment(raw) {
		return ignoreRule{}, false
	}

	s := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), ";"))
	if !strings.HasPrefix(strings.ToLower(s), ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(s[len(ignoreDirective):])
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{keys: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		key := strings.ToLower(strings.TrimSpace(part))
		if key == "" {
			continue
		}

		rule.keys[key] = struct{}{}
	}

	if len(rule.keys) == 0 {
		rule.all = true
		rule.keys = nil
	}

	return rule, true
}

// sectionIgnoreRule merges every directive in the body of s.
func sectionIgnoreRule(s m.Section) ignoreRule {
	var rule ignoreRule

	for _, raw := range s.Body {
		if r, ok := parseIgnoreDirective(trimEOL(raw)); ok {
			mergeIgnoreRule(&rule, r)
		}
	}

	return rule
}

// fileIgnoreRule is the rule of the preamble, if the document has one.
func fileIgnoreRule(doc Document) ignoreRule {
	for _, s := range doc.Sections {
		if s.IsPreamble() {
			return sectionIgnoreRule(s)
		}
	}

	return ignoreRule{}
}
