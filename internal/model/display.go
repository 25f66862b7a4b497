package model

import "strconv"

// DisplayVersion is written into every display document.
const DisplayVersion = "1.0"

// NameRule maps any unit whose name contains one of Keywords, ignoring case,
// to DisplayName.
type NameRule struct {
	Keywords    []string `json:"keywords" yaml:"keywords"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
}

// NameRules is the rules file. The first matching rule wins.
type NameRules struct {
	MatchRules []NameRule `json:"match_rules" yaml:"match_rules"`
}

// DisplayEntry is one unit as shown to the player.
type DisplayEntry struct {
	ID           int    `json:"character_id" yaml:"character_id"`
	DisplayName  string `json:"display_name" yaml:"display_name"`
	UnitName     string `json:"mod_name" yaml:"mod_name"`
	KeyCount     int    `json:"key_count" yaml:"key_count"`
	HasDetection bool   `json:"has_detection" yaml:"has_detection"`
}

// Matched reports whether a rule renamed the unit.
func (e DisplayEntry) Matched() bool {
	return e.DisplayName != e.UnitName
}

// DisplayDocument is the output of the display generator.
type DisplayDocument struct {
	Version     string            `json:"version" yaml:"version"`
	GeneratedAt string            `json:"generated_at" yaml:"generated_at"`
	Total       int               `json:"total_characters" yaml:"total_characters"`
	IDToName    map[string]string `json:"id_to_name" yaml:"id_to_name"`
	Entries     []DisplayEntry    `json:"characters" yaml:"characters"`
}

// NameFor returns the display name of id, or a placeholder when unknown.
func (d DisplayDocument) NameFor(id int) string {
	if name, ok := d.IDToName[strconv.Itoa(id)]; ok {
		return name
	}

	return "Unknown_" + strconv.Itoa(id)
}
