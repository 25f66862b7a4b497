package model

// ManifestVersion is written into every manifest.
const ManifestVersion = "4.0"

// SelectorScope decides whether each unit owns its selector variable or all
// units share one.
type SelectorScope string

const (
	// ScopeLocal gives every unit its own namespaced selector and handlers.
	ScopeLocal SelectorScope = "local"
	// ScopeGlobal shares one selector name across all units (legacy layout).
	ScopeGlobal SelectorScope = "global"
)

// Valid reports whether s is a known scope.
func (s SelectorScope) Valid() bool {
	return s == ScopeLocal || s == ScopeGlobal
}

// Manifest is the record consumed by downstream generators. It is rebuilt
// from scratch on every run.
type Manifest struct {
	Version       string        `json:"version" yaml:"version"`
	GeneratedAt   string        `json:"generated_at" yaml:"generated_at"`
	Root          string        `json:"mods_directory" yaml:"mods_directory"`
	SelectorScope SelectorScope `json:"selector_scope" yaml:"selector_scope"`
	TotalUnits    int           `json:"total_characters" yaml:"total_characters"`
	Units         []UnitRecord  `json:"mods" yaml:"mods"`
	Warnings      []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// UnitRecord is the manifest form of a Unit.
type UnitRecord struct {
	Name                 string          `json:"name" yaml:"name"`
	Path                 string          `json:"path" yaml:"path"`
	ID                   int             `json:"character_id" yaml:"character_id"`
	Selector             string          `json:"selector" yaml:"selector"`
	HasDetection         bool            `json:"has_character_detection" yaml:"has_character_detection"`
	HasPreexistingMarker bool            `json:"has_preexisting_marker" yaml:"has_preexisting_marker"`
	Files                []string        `json:"ini_files" yaml:"ini_files"`
	Bindings             []BindingRecord `json:"key_bindings" yaml:"key_bindings"`
}

// BindingRecord is the manifest form of a Binding.
type BindingRecord struct {
	Section     string `json:"section" yaml:"section"`
	File        string `json:"file" yaml:"file"`
	Key         string `json:"key" yaml:"key"`
	OriginalKey string `json:"original_key" yaml:"original_key"`
	Variable    string `json:"variable,omitempty" yaml:"variable,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// BindingCount returns the number of bindings across all units.
func (mf Manifest) BindingCount() int {
	total := 0
	for _, u := range mf.Units {
		total += len(u.Bindings)
	}

	return total
}
