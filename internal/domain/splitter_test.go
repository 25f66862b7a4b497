package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_RendersExactBytes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"preamble only", "; comment\nx = 1\n"},
		{"sections", "; head\n[Constants]\nglobal $a = 1\n\n[KeyFire]\nkey = VK_F\n"},
		{"crlf", "[A]\r\nkey = VK_A\r\n\r\n[B]\r\n"},
		{"no final newline", "[A]\nkey = VK_A"},
		{"malformed header", "[A]\n[Broken\nkey = 1\n"},
		{"blank lines only", "\n\n\n"},
		{"unicode", "[角色]\nkey = VK_F\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Split("mod.ini", tt.text)
			assert.Equal(t, tt.text, doc.Render())
			require.NotEmpty(t, doc.Sections)
			assert.True(t, doc.Sections[0].IsPreamble())
		})
	}
}

func TestSplit_Sections(t *testing.T) {
	text := "; head\n[Constants]\nglobal $a = 1\n\n  [KeyFire] ; fire\nkey = VK_F\n[Broken\n[]\n"

	doc := Split("mods/a/mod.ini", text)

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, []string{"; head\n"}, doc.Sections[0].Body)

	constants := doc.Sections[1]
	assert.Equal(t, "Constants", constants.Name)
	assert.Equal(t, "[Constants]\n", constants.Header)
	assert.Equal(t, []string{"global $a = 1\n", "\n"}, constants.Body)
	assert.Equal(t, 2, constants.StartLine)
	assert.Equal(t, 4, constants.EndLine)

	fire := doc.Sections[2]
	assert.Equal(t, "KeyFire", fire.Name)
	assert.Equal(t, []string{"key = VK_F\n", "[Broken\n", "[]\n"}, fire.Body, "malformed headers fold into the body")
	assert.Equal(t, 5, fire.StartLine)
	assert.Equal(t, len(text), fire.EndByte)
	assert.Equal(t, text[fire.StartByte:fire.EndByte], fire.Raw())

	assert.Equal(t, []string{"Constants", "KeyFire"}, sectionNames(doc))
}

func TestSplit_DetectsNewline(t *testing.T) {
	assert.Equal(t, "\n", Split("a", "[A]\nkey = 1\n").Newline)
	assert.Equal(t, "\r\n", Split("a", "[A]\r\nkey = 1\r\n").Newline)
	assert.Equal(t, "\n", Split("a", "").Newline)
}

func sectionNames(doc Document) []string {
	var names []string
	for _, s := range doc.Named() {
		names = append(names, s.Name)
	}

	return names
}
