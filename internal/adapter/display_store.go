package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// DisplayStore reads name rules and writes display documents.
type DisplayStore interface {
	// LoadRules reads the rules file. Comments and trailing commas are
	// accepted. A missing file yields no rules.
	LoadRules(path m.Path) (m.NameRules, error)
	SaveDisplay(path m.Path, doc m.DisplayDocument) error
}

// LocalDisplayStore keeps display files on disk.
type LocalDisplayStore struct {
	fs ConfigFSAdapter
}

// NewDisplayStore constructs a DisplayStore implementation.
func NewDisplayStore(fs ConfigFSAdapter) DisplayStore {
	return &LocalDisplayStore{fs: fs}
}

// LoadRules implements DisplayStore.
func (s *LocalDisplayStore) LoadRules(path m.Path) (m.NameRules, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m.NameRules{}, nil
		}

		return m.NameRules{}, fmt.Errorf("read rules %s: %w", path, err)
	}

	var rules m.NameRules
	if err := json.Unmarshal(jsonc.ToJSON(data), &rules); err != nil {
		return m.NameRules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}

	return rules, nil
}

// SaveDisplay implements DisplayStore.
func (s *LocalDisplayStore) SaveDisplay(path m.Path, doc m.DisplayDocument) error {
	data, err := encodeDocument(path, doc)
	if err != nil {
		return fmt.Errorf("encode display: %w", err)
	}

	if err := s.fs.WriteFile(path, data, manifestPerm); err != nil {
		return fmt.Errorf("write display %s: %w", path, err)
	}

	return nil
}
