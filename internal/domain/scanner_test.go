package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/keyctx/internal/adapter"
	m "github.com/mouse-blink/keyctx/internal/model"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()

	for _, path := range []string{
		"Bob/mod.ini",
		"Bob/parts/b.INI",
		"Bob/parts/a.ini",
		"Bob/readme.txt",
		"Bob/DISABLED_old.ini",
		"Bob/.git/config.ini",
		"Amy/mod.ini",
		"Amy/mod.ini.backup",
		"DISABLED_Cat/mod.ini",
		".hidden/mod.ini",
		"Empty/notes.txt",
		"top.ini",
	} {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		writeFile(t, full, "")
	}

	scanner := NewScanner(adapter.NewLocalConfigFSAdapter(), []string{".*", "DISABLED*"})

	units, err := scanner.Scan(m.Path(root))
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, ScannedUnit{
		Name:  "Amy",
		Root:  m.Path(filepath.Join(root, "Amy")),
		Files: []m.Path{m.Path(filepath.Join(root, "Amy", "mod.ini"))},
	}, units[0])

	assert.Equal(t, "Bob", units[1].Name)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "Bob", "mod.ini")),
		m.Path(filepath.Join(root, "Bob", "parts", "a.ini")),
		m.Path(filepath.Join(root, "Bob", "parts", "b.INI")),
	}, units[1].Files)
}

func TestScanner_MissingRoot(t *testing.T) {
	_, err := NewScanner(adapter.NewLocalConfigFSAdapter(), nil).Scan(m.Path(filepath.Join(t.TempDir(), "nope")))
	require.Error(t, err)
}

func TestScanner_Excluded(t *testing.T) {
	s := NewScanner(nil, []string{".*", "DISABLED*"})

	assert.True(t, s.Excluded(".git"))
	assert.True(t, s.Excluded("DISABLED_mod"))
	assert.False(t, s.Excluded("disabled_mod"))
	assert.False(t, s.Excluded("Amy"))
}
