package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"

	"github.com/mouse-blink/keyctx/internal/adapter"
	m "github.com/mouse-blink/keyctx/internal/model"
)

const iniExt = ".ini"

// ScannedUnit is a unit directory and its config files, before analysis.
type ScannedUnit struct {
	Name  string
	Root  m.Path
	Files []m.Path
}

// Scanner discovers units: every immediate sub-directory of the root whose
// name is not excluded, with its .ini files collected recursively.
type Scanner struct {
	fs      adapter.ConfigFSAdapter
	exclude []string
}

// NewScanner returns a scanner skipping names that match any exclude glob.
func NewScanner(fs adapter.ConfigFSAdapter, exclude []string) *Scanner {
	return &Scanner{fs: fs, exclude: exclude}
}

// Scan lists the units under root in name order. A unit whose directory
// cannot be walked is dropped; its error is aggregated into the returned
// error next to the units that were read.
func (s *Scanner) Scan(root m.Path) ([]ScannedUnit, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	var (
		units []ScannedUnit
		errs  error
	)

	for _, entry := range entries {
		if !entry.IsDir() || s.Excluded(entry.Name()) {
			continue
		}

		dir := s.fs.JoinPath(string(root), entry.Name())

		files, err := s.files(dir)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		if len(files) == 0 {
			continue
		}

		units = append(units, ScannedUnit{Name: entry.Name(), Root: dir, Files: files})
	}

	return units, errs
}

// Excluded reports whether a file or directory name is skipped.
func (s *Scanner) Excluded(name string) bool {
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

func (s *Scanner) files(dir m.Path) ([]m.Path, error) {
	var files []m.Path

	err := s.fs.Walk(dir, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}

		if path != string(dir) && s.Excluded(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), iniExt) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
