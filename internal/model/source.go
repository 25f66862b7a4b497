// Package model defines the data structures shared by the key-binding engine.
package model

// Path represents a file system path.
type Path string

// Section is one bracketed block of a config file. The preamble before the
// first header is a pseudo-section with an empty Name and Header.
//
// Header and every Body line keep their original line terminator so that
// concatenating them reproduces the file byte for byte.
type Section struct {
	Name   string
	Header string
	Body   []string
	File   Path

	StartLine int // 1-indexed line of the header (or first preamble line)
	EndLine   int // last line belonging to the section, inclusive
	StartByte int
	EndByte   int // exclusive
}

// Raw returns the exact bytes of the section.
func (s Section) Raw() string {
	size := len(s.Header)
	for _, line := range s.Body {
		size += len(line)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, s.Header...)

	for _, line := range s.Body {
		buf = append(buf, line...)
	}

	return string(buf)
}

// IsPreamble reports whether the section is the unnamed leading text.
func (s Section) IsPreamble() bool {
	return s.Header == ""
}
