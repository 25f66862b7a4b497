package controller

import (
	"time"

	m "github.com/mouse-blink/keyctx/internal/model"
)

type tickMsg time.Time

// Message types.
type unitsMsg struct {
	manifest m.Manifest
	err      error
}

type fileMsg struct {
	result m.FileResult
	done   int
	total  int
}

type summaryMsg struct {
	summary m.Summary
	err     error
}

// List item types.
type unitItem struct {
	id        int
	name      string
	keys      int
	detection bool
}

func (u unitItem) FilterValue() string {
	return u.name
}

type fileItem struct {
	unit     string
	path     string
	status   m.FileStatus
	bindings int
	err      error
}

func (f fileItem) FilterValue() string {
	return f.unit + " " + f.path + " " + string(f.status)
}
