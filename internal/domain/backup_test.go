package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mouse-blink/keyctx/internal/adapter"
	m "github.com/mouse-blink/keyctx/internal/model"
)

func newTestBackups(t *testing.T) BackupManager {
	t.Helper()

	return NewBackupManager(adapter.NewLocalConfigFSAdapter(), ".backup", zaptest.NewLogger(t))
}

func TestBackupManager_EnsureBackupNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.ini")
	writeFile(t, path, "pristine")

	b := newTestBackups(t)

	created, err := b.EnsureBackup(m.Path(path))
	require.NoError(t, err)
	assert.True(t, created)

	writeFile(t, path, "mutated")

	created, err = b.EnsureBackup(m.Path(path))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "pristine", readFile(t, path+".backup"))
}

func TestBackupManager_RestoreAll(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "Amy", "mod.ini")
	b := filepath.Join(root, "Bob", "deep", "mod.ini")
	c := filepath.Join(root, "Cat", "mod.ini")

	for _, path := range []string{a, b, c} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		writeFile(t, path, "pristine "+path)
	}

	mgr := newTestBackups(t)
	for _, path := range []string{a, b} {
		_, err := mgr.EnsureBackup(m.Path(path))
		require.NoError(t, err)
		writeFile(t, path, "mutated")
	}

	require.NoError(t, os.Chmod(b, 0o444))

	restored, err := mgr.RestoreAll(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, 2, restored)

	assert.Equal(t, "pristine "+a, readFile(t, a))
	assert.Equal(t, "pristine "+b, readFile(t, b), "read-only files are restored")
	assert.Equal(t, "pristine "+c, readFile(t, c))

	restored, err = mgr.RestoreAll(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Zero(t, restored, "identical files are not rewritten")
}

func TestBackupManager_RestoreAllRecreatesMissingOriginal(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.ini")
	writeFile(t, path+".backup", "pristine")

	restored, err := newTestBackups(t).RestoreAll(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.Equal(t, "pristine", readFile(t, path))
}

func TestBackupManager_RestoreAllHonoursCancellation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mod.ini.backup"), "pristine")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBackups(t).RestoreAll(ctx, m.Path(root))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBackupManager_RoundTrip(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.ini")
	pristine := "[KeyFire]\r\nkey = VK_F\r\n"
	writeFile(t, path, pristine)

	mgr := newTestBackups(t)
	_, err := mgr.EnsureBackup(m.Path(path))
	require.NoError(t, err)

	writeFile(t, path, "anything")

	current, baseline, err := mgr.ReadPristine(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "anything", current)
	assert.Equal(t, pristine, baseline)

	_, err = mgr.RestoreAll(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, pristine, readFile(t, path))

	purged, err := mgr.Purge(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.NoFileExists(t, path+".backup")
	assert.FileExists(t, path)
}

func TestBackupManager_ReadPristineWithoutBackup(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.ini")
	writeFile(t, path, "only")

	current, baseline, err := newTestBackups(t).ReadPristine(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "only", current)
	assert.Equal(t, "only", baseline)

	_, _, err = newTestBackups(t).ReadPristine(m.Path(filepath.Join(root, "missing.ini")))
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Stat(path)
	if err == nil && info.Mode().Perm()&0o200 == 0 {
		require.NoError(t, os.Chmod(path, 0o644))
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
