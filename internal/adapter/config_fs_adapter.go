// Package adapter contains infrastructure adapters for the keyctx CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// ConfigFSAdapter abstracts the filesystem operations the domain layer needs
// to scan, back up and rewrite config trees, so workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type ConfigFSAdapter interface {
	// Walk traverses root in lexical order. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadDir lists a directory sorted by name.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of path, keeping perm for new files.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// CopyFile copies src over dst byte for byte and keeps the mode of src.
	CopyFile(src, dst m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	Chmod(path m.Path, mode os.FileMode) error
	Remove(path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalConfigFSAdapter backs ConfigFSAdapter with the local disk.
type LocalConfigFSAdapter struct{}

// NewLocalConfigFSAdapter constructs a LocalConfigFSAdapter.
func NewLocalConfigFSAdapter() *LocalConfigFSAdapter {
	return &LocalConfigFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalConfigFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadDir lists the entries of path sorted by name.
func (a *LocalConfigFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// ReadFile loads file contents from disk.
func (a *LocalConfigFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalConfigFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// CopyFile copies a single file.
func (a *LocalConfigFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src lies inside the scanned tree
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	// #nosec G304 - dst lies inside the scanned tree
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()

		return fmt.Errorf("copy %s: %w", src, err)
	}

	return destFile.Close()
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalConfigFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Chmod changes the mode of path.
func (a *LocalConfigFSAdapter) Chmod(path m.Path, mode os.FileMode) error {
	return os.Chmod(string(path), mode)
}

// Remove deletes a single file.
func (a *LocalConfigFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalConfigFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalConfigFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
