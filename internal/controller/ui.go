// Package controller renders keyctx results, as plain tables or as an
// interactive terminal UI.
package controller

import (
	m "github.com/mouse-blink/keyctx/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeApply
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode shows the units and bindings of a manifest.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithApplyMode follows an apply run file by file.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// UI presents workflow results. Start must precede the Display calls of
// the chosen mode; Wait blocks until the user is done with the output.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait()
	DisplayUnits(mf m.Manifest, err error) error
	DisplayFileResult(result m.FileResult, done, total int)
	DisplaySummary(summary m.Summary, err error) error
	DisplayRestore(restored, purged int, err error) error
	DisplayNames(doc m.DisplayDocument, output, controller m.Path) error
}
