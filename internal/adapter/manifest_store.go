package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/keyctx/internal/model"
)

const manifestPerm = 0o644

// ManifestStore persists and retrieves run manifests. The format follows
// the file extension: .yaml and .yml are YAML, anything else is JSON.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// LocalManifestStore writes manifests through a ConfigFSAdapter.
type LocalManifestStore struct {
	fs ConfigFSAdapter
}

// NewManifestStore constructs a ManifestStore implementation.
func NewManifestStore(fs ConfigFSAdapter) ManifestStore {
	return &LocalManifestStore{fs: fs}
}

// SaveManifest replaces the manifest at path.
func (s *LocalManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	data, err := encodeDocument(path, manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := s.fs.WriteFile(path, data, manifestPerm); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadManifest reads the manifest at path.
func (s *LocalManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if isYAML(path) {
		err = yaml.Unmarshal(data, &manifest)
	} else {
		err = json.Unmarshal(data, &manifest)
	}

	if err != nil {
		return m.Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return manifest, nil
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))

	return ext == ".yaml" || ext == ".yml"
}

// encodeDocument renders v as indented JSON, keeping non-ASCII names
// readable, or as YAML for YAML paths.
func encodeDocument(path m.Path, v any) ([]byte, error) {
	if isYAML(path) {
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, err
		}

		if err := enc.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
