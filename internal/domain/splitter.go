package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/keyctx/internal/model"
)

var headerPattern = regexp.MustCompile(`^\s*\[([^\]\r\n]+)\]\s*(;.*)?$`)

// Document is a config file split into sections. Sections[0] is always the
// preamble, which may be empty.
type Document struct {
	Path     m.Path
	Newline  string
	Sections []m.Section
}

// Render reassembles the document.
func (d Document) Render() string {
	var b strings.Builder

	for _, s := range d.Sections {
		b.WriteString(s.Header)

		for _, line := range s.Body {
			b.WriteString(line)
		}
	}

	return b.String()
}

// Named returns the sections that have a header, in file order.
func (d Document) Named() []m.Section {
	if len(d.Sections) <= 1 {
		return nil
	}

	return d.Sections[1:]
}

// Split turns raw file text into sections. It never fails: a line that is not
// a well-formed header is body text of the current section.
func Split(path m.Path, text string) Document {
	doc := Document{Path: path, Newline: detectNewline(text)}

	current := m.Section{File: path, StartLine: 1}
	line, offset := 0, 0

	for _, raw := range splitLines(text) {
		line++

		if name, ok := headerName(raw); ok {
			doc.Sections = append(doc.Sections, closeSection(current, line-1, offset))
			current = m.Section{
				Name:      name,
				Header:    raw,
				File:      path,
				StartLine: line,
				StartByte: offset,
			}
		} else {
			current.Body = append(current.Body, raw)
		}

		offset += len(raw)
	}

	doc.Sections = append(doc.Sections, closeSection(current, line, offset))

	return doc
}

func closeSection(s m.Section, lastLine, offset int) m.Section {
	s.EndLine = lastLine
	s.EndByte = offset

	return s
}

func headerName(raw string) (string, bool) {
	match := headerPattern.FindStringSubmatch(trimEOL(raw))
	if match == nil {
		return "", false
	}

	name := strings.TrimSpace(match[1])
	if name == "" {
		return "", false
	}

	return name, true
}

// splitLines splits text after every '\n', keeping the terminator. A final
// line without terminator is kept as is.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func trimEOL(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")

	return strings.TrimSuffix(raw, "\r")
}

// eolOf returns the terminator of raw ("" for a final unterminated line).
func eolOf(raw string) string {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(raw, "\n"):
		return "\n"
	default:
		return ""
	}
}

func detectNewline(text string) string {
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return "\r\n"
	}

	return "\n"
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func isComment(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), ";")
}
