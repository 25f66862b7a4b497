package domain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mouse-blink/keyctx/internal/adapter"
	m "github.com/mouse-blink/keyctx/internal/model"
)

const ownerWrite = 0o200

// BackupManager keeps a pristine sibling copy of every file the engine
// mutates and restores from those copies.
type BackupManager interface {
	// RestoreAll copies every backup under root over its original and
	// returns how many originals changed. Failures are aggregated; one bad
	// file never stops the others.
	RestoreAll(ctx context.Context, root m.Path) (int, error)
	// EnsureBackup creates path's backup unless one exists. It reports
	// whether a backup was created.
	EnsureBackup(path m.Path) (bool, error)
	// Purge deletes every backup under root.
	Purge(ctx context.Context, root m.Path) (int, error)
	// ReadPristine returns the current content of path and its baseline:
	// the backup when one exists, the current content otherwise.
	ReadPristine(path m.Path) (current, baseline string, err error)
	BackupPath(path m.Path) m.Path
}

type backupManager struct {
	fs     adapter.ConfigFSAdapter
	suffix string
	log    *zap.Logger
}

// NewBackupManager returns a BackupManager using suffix for sibling copies.
func NewBackupManager(fs adapter.ConfigFSAdapter, suffix string, log *zap.Logger) BackupManager {
	if log == nil {
		log = zap.NewNop()
	}

	return &backupManager{fs: fs, suffix: suffix, log: log}
}

func (b *backupManager) BackupPath(path m.Path) m.Path {
	return m.Path(string(path) + b.suffix)
}

func (b *backupManager) RestoreAll(ctx context.Context, root m.Path) (int, error) {
	restored := 0

	var errs error

	for _, backup := range b.backups(root, &errs) {
		if err := ctx.Err(); err != nil {
			return restored, multierr.Append(errs, err)
		}

		original := m.Path(strings.TrimSuffix(string(backup), b.suffix))

		changed, err := b.restore(backup, original)
		if err != nil {
			b.log.Warn("restore failed", zap.String("file", string(original)), zap.Error(err))
			errs = multierr.Append(errs, err)

			continue
		}

		if changed {
			restored++

			b.log.Debug("restored", zap.String("file", string(original)))
		}
	}

	return restored, errs
}

func (b *backupManager) restore(backup, original m.Path) (bool, error) {
	want, err := b.fs.ReadFile(backup)
	if err != nil {
		return false, fmt.Errorf("read backup %s: %w", backup, err)
	}

	info, err := b.fs.FileInfo(original)

	switch {
	case err == nil:
		have, readErr := b.fs.ReadFile(original)
		if readErr == nil && bytes.Equal(have, want) {
			return false, nil
		}

		if info.Mode().Perm()&ownerWrite == 0 {
			if err := b.fs.Chmod(original, info.Mode().Perm()|ownerWrite); err != nil {
				return false, fmt.Errorf("clear read-only %s: %w", original, err)
			}
		}
	case !os.IsNotExist(err):
		return false, fmt.Errorf("stat %s: %w", original, err)
	}

	if err := b.fs.CopyFile(backup, original); err != nil {
		return false, fmt.Errorf("restore %s: %w", original, err)
	}

	return true, nil
}

func (b *backupManager) EnsureBackup(path m.Path) (bool, error) {
	backup := b.BackupPath(path)

	if _, err := b.fs.FileInfo(backup); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", backup, err)
	}

	if err := b.fs.CopyFile(path, backup); err != nil {
		return false, fmt.Errorf("back up %s: %w", path, err)
	}

	return true, nil
}

func (b *backupManager) Purge(ctx context.Context, root m.Path) (int, error) {
	removed := 0

	var errs error

	for _, backup := range b.backups(root, &errs) {
		if err := ctx.Err(); err != nil {
			return removed, multierr.Append(errs, err)
		}

		if err := b.fs.Remove(backup); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("remove %s: %w", backup, err))

			continue
		}

		removed++
	}

	return removed, errs
}

func (b *backupManager) ReadPristine(path m.Path) (string, string, error) {
	current, err := b.fs.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}

	backup, err := b.fs.ReadFile(b.BackupPath(path))

	switch {
	case err == nil:
		return string(current), string(backup), nil
	case os.IsNotExist(err):
		return string(current), string(current), nil
	default:
		return "", "", fmt.Errorf("read backup of %s: %w", path, err)
	}
}

// backups lists every backup file under root in walk order. Unreadable
// entries are recorded in errs and skipped.
func (b *backupManager) backups(root m.Path, errs *error) []m.Path {
	var found []m.Path

	walkErr := b.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			*errs = multierr.Append(*errs, fmt.Errorf("walk %s: %w", path, err))

			return nil
		}

		if !info.IsDir() && strings.HasSuffix(path, b.suffix) && len(path) > len(b.suffix) {
			found = append(found, m.Path(path))
		}

		return nil
	})
	if walkErr != nil {
		*errs = multierr.Append(*errs, walkErr)
	}

	return found
}
