package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mouse-blink/keyctx/internal/adapter"
	"github.com/mouse-blink/keyctx/internal/config"
	m "github.com/mouse-blink/keyctx/internal/model"
)

var (
	// ErrNoUnits is returned when no unit owns a key binding.
	ErrNoUnits = errors.New("no units with key bindings found")
	// ErrManifestWrite marks a run whose files were rewritten but whose
	// manifest could not be saved.
	ErrManifestWrite = errors.New("manifest write failed")
	// ErrBadRoot is returned when the root is not a readable directory.
	ErrBadRoot = errors.New("invalid root directory")
)

// FileObserver is told about every file an apply run finishes, with the
// number of files done so far and the total.
type FileObserver func(result m.FileResult, done, total int)

// RestoreResult summarises a restore run.
type RestoreResult struct {
	Restored int
	Purged   int
}

// DisplayResult summarises a display run.
type DisplayResult struct {
	Document   m.DisplayDocument
	Output     m.Path
	Controller m.Path // empty when no controller file was patched
}

// Workflow defines the keyctx operations.
type Workflow interface {
	// List computes what Apply would do without touching any file.
	List(ctx context.Context, root m.Path) (m.Manifest, error)
	Apply(ctx context.Context, root m.Path, observe FileObserver) (m.Summary, error)
	Restore(ctx context.Context, root m.Path, purge bool) (RestoreResult, error)
	View(path m.Path) (m.Manifest, error)
	Display(ctx context.Context, root m.Path) (DisplayResult, error)
}

// Option customises a Workflow.
type Option func(*workflow)

// WithClock replaces the time source used for generated_at.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *workflow) {
		w.log = log
	}
}

type workflow struct {
	fsAdapter adapter.ConfigFSAdapter
	manifests adapter.ManifestStore
	displays  adapter.DisplayStore
	cfg       config.Config
	engine    *Engine
	scanner   *Scanner
	backups   BackupManager
	log       *zap.Logger
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.ConfigFSAdapter,
	manifests adapter.ManifestStore,
	displays adapter.DisplayStore,
	cfg config.Config,
	opts ...Option,
) Workflow {
	w := &workflow{
		fsAdapter: fsAdapter,
		manifests: manifests,
		displays:  displays,
		cfg:       cfg,
		engine:    NewEngine(cfg),
		scanner:   NewScanner(fsAdapter, cfg.Exclude),
		log:       zap.NewNop(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.backups = NewBackupManager(fsAdapter, cfg.BackupSuffix, w.log)

	return w
}

func (w *workflow) List(ctx context.Context, root m.Path) (m.Manifest, error) {
	units, total, warnings, _, err := w.analyze(ctx, root)
	if err != nil {
		return m.Manifest{}, err
	}

	mf := w.engine.Manifest(root, units, total, warnings, w.now())
	if total == 0 {
		return mf, ErrNoUnits
	}

	return mf, nil
}

func (w *workflow) Apply(ctx context.Context, root m.Path, observe FileObserver) (m.Summary, error) {
	var summary m.Summary

	if err := w.checkRoot(root); err != nil {
		return summary, err
	}

	restored, err := w.backups.RestoreAll(ctx, root)
	summary.Restored = restored

	if err != nil {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		w.log.Warn("restore incomplete", zap.Error(err))
	}

	units, total, warnings, skipped, err := w.analyze(ctx, root)
	if err != nil {
		return summary, err
	}

	summary.Units = total
	summary.Warnings = warnings
	summary.Files = skipped

	pending := 0
	for _, u := range units {
		pending += len(u.Files)
	}

	done := 0

	for _, u := range units {
		for _, out := range w.engine.Render(u, total) {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			result := w.write(u, out)
			summary.Files = append(summary.Files, result)
			summary.Bindings += result.Bindings

			done++

			if observe != nil {
				observe(result, done, pending)
			}
		}
	}

	if total == 0 {
		return summary, ErrNoUnits
	}

	path := w.manifestPath(root)
	mf := w.engine.Manifest(root, units, total, warnings, w.now())

	if err := w.manifests.SaveManifest(path, mf); err != nil {
		w.log.Error("manifest not saved", zap.String("path", string(path)), zap.Error(err))

		return summary, fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	summary.Manifest = path

	w.log.Info("apply finished",
		zap.Int("units", total),
		zap.Int("bindings", summary.Bindings),
		zap.Int("rewritten", summary.Count(m.FileRewritten)),
		zap.Int("skipped", summary.Count(m.FileSkipped)),
		zap.Int("warnings", len(warnings)),
	)

	return summary, nil
}

// write backs up and rewrites one file when its content changes.
func (w *workflow) write(u UnitAnalysis, out FileOutput) m.FileResult {
	result := m.FileResult{Unit: u.Name, Path: out.Path, Bindings: out.Bindings, Status: m.FileUnchanged}
	if !out.Changed() {
		return result
	}

	fail := func(err error) m.FileResult {
		w.log.Warn("file skipped", zap.String("file", string(out.Path)), zap.Error(err))
		result.Status = m.FileSkipped
		result.Err = err

		return result
	}

	info, err := w.fsAdapter.FileInfo(out.Path)
	if err != nil {
		return fail(fmt.Errorf("stat %s: %w", out.Path, err))
	}

	if _, err := w.backups.EnsureBackup(out.Path); err != nil {
		return fail(err)
	}

	perm := info.Mode().Perm()
	if perm&ownerWrite == 0 {
		if err := w.fsAdapter.Chmod(out.Path, perm|ownerWrite); err != nil {
			return fail(fmt.Errorf("clear read-only %s: %w", out.Path, err))
		}
	}

	if err := w.fsAdapter.WriteFile(out.Path, []byte(out.Content), perm|ownerWrite); err != nil {
		return fail(fmt.Errorf("write %s: %w", out.Path, err))
	}

	result.Status = m.FileRewritten
	if out.Bindings == 0 {
		result.Status = m.FileStripped
	}

	w.log.Debug("file written", zap.String("file", string(out.Path)), zap.String("status", string(result.Status)))

	return result
}

// analyze reads the pristine baseline of every unit file and allocates.
// Unreadable files are returned as skipped results.
func (w *workflow) analyze(ctx context.Context, root m.Path) ([]UnitAnalysis, int, []m.Warning, []m.FileResult, error) {
	if err := w.checkRoot(root); err != nil {
		return nil, 0, nil, nil, err
	}

	scanned, err := w.scanner.Scan(root)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			w.log.Warn("unit skipped", zap.Error(e))
		}
	}

	var (
		analyses []UnitAnalysis
		skipped  []m.FileResult
		warnings []m.Warning
	)

	for _, su := range scanned {
		ua := UnitAnalysis{Name: su.Name, Root: su.Root, ID: -1}

		for _, path := range su.Files {
			if err := ctx.Err(); err != nil {
				return nil, 0, nil, nil, err
			}

			current, baseline, err := w.backups.ReadPristine(path)
			if err != nil {
				w.log.Warn("file skipped", zap.String("file", string(path)), zap.Error(err))
				skipped = append(skipped, m.FileResult{Unit: su.Name, Path: path, Status: m.FileSkipped, Err: err})
				warnings = append(warnings, m.Warning{Unit: su.Name, File: path, Message: "unreadable, skipped"})

				continue
			}

			fa := w.engine.AnalyzeFile(su.Name, path, current, baseline)
			ua.Files = append(ua.Files, fa)
			ua.HasDetection = ua.HasDetection || HasDetection(baseline)

			w.log.Debug("file analysed",
				zap.String("file", string(path)),
				zap.Int("bindings", len(fa.Matches)),
				zap.Bool("markers", fa.Markers.Found()),
			)
		}

		analyses = append(analyses, ua)
	}

	units, total, allocWarnings := w.engine.Allocate(analyses)
	for _, warn := range allocWarnings {
		w.log.Warn("pool exhausted", zap.String("unit", warn.Unit), zap.String("key", warn.Key))
	}

	return units, total, append(warnings, allocWarnings...), skipped, nil
}

func (w *workflow) Restore(ctx context.Context, root m.Path, purge bool) (RestoreResult, error) {
	var result RestoreResult

	if err := w.checkRoot(root); err != nil {
		return result, err
	}

	restored, err := w.backups.RestoreAll(ctx, root)
	result.Restored = restored

	if err != nil {
		return result, fmt.Errorf("restore: %w", err)
	}

	if purge {
		purged, err := w.backups.Purge(ctx, root)
		result.Purged = purged

		if err != nil {
			return result, fmt.Errorf("purge: %w", err)
		}
	}

	w.log.Info("restore finished", zap.Int("restored", result.Restored), zap.Int("purged", result.Purged))

	return result, nil
}

func (w *workflow) View(path m.Path) (m.Manifest, error) {
	return w.manifests.LoadManifest(path)
}

func (w *workflow) Display(ctx context.Context, root m.Path) (DisplayResult, error) {
	var result DisplayResult

	mf, err := w.manifests.LoadManifest(w.manifestPath(root))
	if err != nil {
		return result, err
	}

	rules, err := w.displays.LoadRules(w.resolve(root, w.cfg.Display.Rules))
	if err != nil {
		return result, err
	}

	gen := NewDisplayGenerator(w.engine)
	result.Document = gen.Document(mf, rules)
	result.Output = w.resolve(root, w.cfg.Display.Output)

	if err := w.displays.SaveDisplay(result.Output, result.Document); err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	controller := w.resolve(root, w.cfg.Display.ControllerIni)

	info, err := w.fsAdapter.FileInfo(controller)
	if err != nil {
		if os.IsNotExist(err) {
			w.log.Warn("controller ini missing, overlay not installed", zap.String("path", string(controller)))

			return result, nil
		}

		return result, fmt.Errorf("stat %s: %w", controller, err)
	}

	data, err := w.fsAdapter.ReadFile(controller)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", controller, err)
	}

	patched := gen.Patch(string(data), result.Document)
	if patched != string(data) {
		if err := w.fsAdapter.WriteFile(controller, []byte(patched), info.Mode().Perm()); err != nil {
			return result, fmt.Errorf("write %s: %w", controller, err)
		}
	}

	result.Controller = controller

	return result, nil
}

func (w *workflow) checkRoot(root m.Path) error {
	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRoot, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrBadRoot, root)
	}

	return nil
}

func (w *workflow) manifestPath(root m.Path) m.Path {
	return w.resolve(root, w.cfg.Manifest)
}

// resolve anchors relative config paths at root.
func (w *workflow) resolve(root m.Path, path string) m.Path {
	if filepath.IsAbs(path) {
		return m.Path(path)
	}

	return w.fsAdapter.JoinPath(string(root), path)
}
