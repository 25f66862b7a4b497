package domain

import (
	"strings"
)

// BlockKind names one kind of generated content. Each kind has exactly one
// stripping rule in the Rewriter.
type BlockKind string

// Current block kinds.
const (
	KindSelector    BlockKind = "selector"
	KindHandlers    BlockKind = "handlers"
	KindDisplay     BlockKind = "display"
	KindOriginalKey BlockKind = "original-key"
	KindPredicate   BlockKind = "predicate"
)

// Block kinds written by earlier generations of the tool.
const (
	KindLegacySelector    BlockKind = "legacy-selector"
	KindLegacyDisplay     BlockKind = "legacy-display"
	KindLegacyDeclaration BlockKind = "legacy-declaration"
	KindLegacyPredicate   BlockKind = "legacy-predicate"
)

const (
	markerTag          = "keyctx"
	originalLinePrefix = "; " + markerTag + ":original "

	legacySelectorBegin = "; ===== 角色选择器控制"
	legacySelectorEnd   = "; ===== 选择器控制结束"
	legacyDisplayBegin  = "; ===== 角色名称显示"
	legacyDisplayEnd    = "; ===== 显示代码结束"
)

// BeginMarker is the first line of a delimited region.
func BeginMarker(kind BlockKind) string {
	return "; >>> " + markerTag + ":" + string(kind)
}

// EndMarker is the last line of a delimited region.
func EndMarker(kind BlockKind) string {
	return "; <<< " + markerTag + ":" + string(kind)
}

// region is an open delimited block the stripper is currently inside.
type region struct {
	kind   BlockKind
	isEnd  func(line string) bool
	legacy bool
}

func currentRegion(kind BlockKind) region {
	end := EndMarker(kind)

	return region{
		kind:  kind,
		isEnd: func(line string) bool { return strings.TrimSpace(line) == end },
	}
}

func legacyRegion(kind BlockKind, endPrefix string) region {
	return region{
		kind:   kind,
		isEnd:  func(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), endPrefix) },
		legacy: true,
	}
}

// openRegion returns the region that line begins, if any.
func openRegion(line string, legacy bool) (region, bool) {
	trimmed := strings.TrimSpace(line)

	for _, kind := range []BlockKind{KindSelector, KindHandlers, KindDisplay} {
		if trimmed == BeginMarker(kind) {
			return currentRegion(kind), true
		}
	}

	if !legacy {
		return region{}, false
	}

	switch {
	case strings.HasPrefix(trimmed, legacySelectorBegin):
		return legacyRegion(KindLegacySelector, legacySelectorEnd), true
	case strings.HasPrefix(trimmed, legacyDisplayBegin):
		return legacyRegion(KindLegacyDisplay, legacyDisplayEnd), true
	}

	return region{}, false
}

// StripReport counts what Strip removed, per kind.
type StripReport map[BlockKind]int

// Found reports whether any generated content was present.
func (r StripReport) Found() bool {
	for _, n := range r {
		if n > 0 {
			return true
		}
	}

	return false
}

// Legacy reports whether output of an earlier generation was present.
func (r StripReport) Legacy() bool {
	return r[KindLegacySelector]+r[KindLegacyDisplay]+
		r[KindLegacyDeclaration]+r[KindLegacyPredicate] > 0
}
