package model

// Binding is one key-assignment discovered in a section, together with the
// optional metadata found next to it.
type Binding struct {
	Unit        string
	File        Path
	Section     string
	OriginalKey string
	AssignedKey string
	Variable    string // first "$name =" assignment, empty when absent
	Type        string
	Condition   string // pre-injection condition, empty when absent
	Description string
}

// Remapped reports whether the binding received a key different from its
// original one.
func (b Binding) Remapped() bool {
	return b.AssignedKey != "" && b.AssignedKey != b.OriginalKey
}

// Unit is one discovered mod: a directory of config files sharing an id.
type Unit struct {
	Name  string
	Root  Path
	Files []Path
	ID    int

	// HasPreexistingMarker is set when any file carried engine output
	// before it was stripped.
	HasPreexistingMarker bool
	// HasDetection is set when a file declares a presence variable such as
	// $active or $mod_enabled.
	HasDetection bool

	Bindings []Binding
}

// Warning is a non-fatal condition recorded during a run.
type Warning struct {
	Unit    string
	Key     string
	File    Path
	Message string
}

func (w Warning) String() string {
	switch {
	case w.Key != "":
		return w.Unit + ": " + w.Key + ": " + w.Message
	case w.File != "":
		return string(w.File) + ": " + w.Message
	default:
		return w.Unit + ": " + w.Message
	}
}
