// Package app implements the application layer for recheck.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/recheck/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/recheck/internal/engine/checker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     ports.Compiler
	artifacts    ports.ArtifactStore
	stores       ports.ResultStoreOpener
	hasher       ports.Hasher
	tracer       ports.Tracer
	renderer     ports.Renderer
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compiler ports.Compiler,
	artifacts ports.ArtifactStore,
	stores ports.ResultStoreOpener,
	hasher ports.Hasher,
	tracer ports.Tracer,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		compiler:     compiler,
		artifacts:    artifacts,
		stores:       stores,
		hasher:       hasher,
		tracer:       tracer,
		renderer:     renderer,
		logger:       log,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory the manifest is searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	KeepGoing bool
	Restore   bool
}

// Check recompiles the named puzzles, or every manifest puzzle when none are
// named, and compares them with the committed artifacts.
func (a *App) Check(ctx context.Context, puzzles []string, opts CheckOptions) error {
	manifest, err := a.loadManifest()
	if err != nil {
		return err
	}

	store, err := a.stores.Open(manifest.Root)
	if err != nil {
		return err
	}

	shutdown := telemetry.Setup(a.renderer)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	c := checker.New(a.compiler, a.artifacts, store, a.hasher, a.tracer, a.renderer, a.logger)
	_, err = c.Run(ctx, manifest, checker.Options{
		Only:      puzzles,
		KeepGoing: opts.KeepGoing,
		Restore:   opts.Restore,
	})
	return err
}

// List returns the manifest puzzles in check order.
func (a *App) List(_ context.Context) ([]domain.Puzzle, error) {
	manifest, err := a.loadManifest()
	if err != nil {
		return nil, err
	}
	return manifest.Puzzles(), nil
}

// StatusReport holds the last recorded result of every puzzle.
type StatusReport struct {
	// Records follows manifest order. Puzzles that were never checked have an
	// unknown status.
	Records []domain.CheckRecord
	// Unlisted holds the records of puzzles no longer in the manifest, sorted by name.
	Unlisted []domain.CheckRecord
}

// Status returns the recorded results of the manifest puzzles.
func (a *App) Status(_ context.Context) (StatusReport, error) {
	manifest, err := a.loadManifest()
	if err != nil {
		return StatusReport{}, err
	}

	store, err := a.stores.Open(manifest.Root)
	if err != nil {
		return StatusReport{}, err
	}

	all, err := store.All()
	if err != nil {
		return StatusReport{}, err
	}
	byName := make(map[string]domain.CheckRecord, len(all))
	for _, r := range all {
		byName[r.Puzzle] = r
	}

	report := StatusReport{Records: make([]domain.CheckRecord, 0, len(manifest.Names))}
	for _, name := range manifest.Names {
		r, ok := byName[name]
		if !ok {
			r = domain.CheckRecord{Puzzle: name, Status: domain.StatusUnknown}
		}
		report.Records = append(report.Records, r)
		delete(byName, name)
	}
	for _, r := range all {
		if _, ok := byName[r.Puzzle]; ok {
			report.Unlisted = append(report.Unlisted, r)
		}
	}
	return report, nil
}

// Clean removes the stored check results and the state directory of the manifest root.
func (a *App) Clean(_ context.Context) error {
	manifest, err := a.loadManifest()
	if err != nil {
		return err
	}

	store, err := a.stores.Open(manifest.Root)
	if err != nil {
		return err
	}

	var errs error
	statePath := domain.StatePath(manifest.Root)

	a.logger.Info("removing check results...")
	if err := store.Clear(); err != nil {
		errs = errors.Join(errs, err)
	}
	if err := os.RemoveAll(statePath); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", statePath)))
	}
	if errs == nil {
		a.logger.Info("removed check results")
	}

	return errs
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

func (a *App) loadManifest() (*domain.Manifest, error) {
	manifest, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return manifest, nil
}
