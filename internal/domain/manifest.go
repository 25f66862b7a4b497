package domain

import (
	"path/filepath"
	"sort"
	"time"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// Manifest builds the run record from allocated units. Only units with an
// id are listed, in id order; paths are relative to root with forward
// slashes so the record does not depend on the platform.
func (e *Engine) Manifest(root m.Path, units []UnitAnalysis, total int, warnings []m.Warning, at time.Time) m.Manifest {
	mf := m.Manifest{
		Version:       m.ManifestVersion,
		GeneratedAt:   at.UTC().Format(time.RFC3339),
		Root:          string(root),
		SelectorScope: e.planner.Scope(),
		TotalUnits:    total,
		Units:         []m.UnitRecord{},
	}

	for _, u := range units {
		if u.ID < 0 {
			continue
		}

		unit := u.Model()
		record := m.UnitRecord{
			Name:                 unit.Name,
			Path:                 relSlash(root, unit.Root),
			ID:                   unit.ID,
			Selector:             e.planner.Names(unit.ID).Variable,
			HasDetection:         unit.HasDetection,
			HasPreexistingMarker: unit.HasPreexistingMarker,
			Files:                make([]string, 0, len(unit.Files)),
			Bindings:             make([]m.BindingRecord, 0, len(unit.Bindings)),
		}

		for _, f := range unit.Files {
			record.Files = append(record.Files, relSlash(root, f))
		}

		for _, b := range unit.Bindings {
			record.Bindings = append(record.Bindings, m.BindingRecord{
				Section:     b.Section,
				File:        relSlash(root, b.File),
				Key:         b.AssignedKey,
				OriginalKey: b.OriginalKey,
				Variable:    b.Variable,
				Type:        b.Type,
				Description: b.Description,
			})
		}

		mf.Units = append(mf.Units, record)
	}

	sort.SliceStable(mf.Units, func(i, j int) bool { return mf.Units[i].ID < mf.Units[j].ID })

	for _, w := range warnings {
		mf.Warnings = append(mf.Warnings, w.String())
	}

	return mf
}

func relSlash(root, path m.Path) string {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		return filepath.ToSlash(string(path))
	}

	return filepath.ToSlash(rel)
}
