package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/keyctx/internal/model"
)

func TestLocalConfigFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "mod.ini"), "[Constants]\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.ini"), "[KeyFire]\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.False(t, containsPath(visited, filepath.Join(nestedDir, "child.ini")))
		assert.True(t, containsPath(visited, filepath.Join(root, "mod.ini")))
	})

	t.Run("recursive visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalConfigFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.ini"), "")
		writeTestFile(t, filepath.Join(root, "a.ini"), "")

		nestedDir := filepath.Join(root, "c")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.ini"), "")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				visited = append(visited, path)
			}
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "a.ini"),
			filepath.Join(root, "b.ini"),
			filepath.Join(nestedDir, "child.ini"),
		}, visited)
	})
}

func TestLocalConfigFSAdapter_ReadDirSorted(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	root := t.TempDir()
	for _, name := range []string{"zeta", "Alpha", "beta"} {
		mustMkdir(t, filepath.Join(root, name))
	}

	entries, err := adapter.ReadDir(m.Path(root))
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, names)
}

func TestLocalConfigFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "sub", "mod.ini")
	content := "[KeyFire]\r\nkey = VK_F\r\n"

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte(content), 0o644))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalConfigFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	root := t.TempDir()
	src := filepath.Join(root, "mod.ini")
	dst := filepath.Join(root, "mod.ini.backup")
	writeTestFile(t, src, "[KeyFire]\nkey = VK_F")

	require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst)))
	assert.Equal(t, "[KeyFire]\nkey = VK_F", string(readFileBytes(t, dst)))

	t.Run("overwrites an existing destination", func(t *testing.T) {
		writeTestFile(t, src, "new")

		require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst)))
		assert.Equal(t, "new", string(readFileBytes(t, dst)))
	})

	t.Run("missing source", func(t *testing.T) {
		err := adapter.CopyFile(m.Path(filepath.Join(root, "missing.ini")), m.Path(dst))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestLocalConfigFSAdapter_ChmodAndRemove(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "mod.ini")
	writeTestFile(t, path, "x")

	require.NoError(t, adapter.Chmod(m.Path(path), 0o444))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), info.Mode().Perm())

	require.NoError(t, adapter.Remove(m.Path(path)))

	_, err = adapter.FileInfo(m.Path(path))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalConfigFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalConfigFSAdapter()

	joined := adapter.JoinPath("mods", "Alice", "mod.ini")
	assert.Equal(t, m.Path(filepath.Join("mods", "Alice", "mod.ini")), joined)

	rel, err := adapter.RelPath(m.Path("mods"), joined)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("Alice", "mod.ini")), rel)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return data
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
