// Package checker implements the recompile check loop.
package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a check run.
type Options struct {
	// Only restricts the run to the named puzzles. Manifest order is kept.
	Only []string
	// KeepGoing checks every puzzle instead of stopping at the first failure.
	KeepGoing bool
	// Restore writes the committed artifact back when a puzzle fails.
	Restore bool
}

// Checker recompiles puzzles and compares the result with the committed artifacts.
// Puzzles are checked one at a time, in manifest order.
type Checker struct {
	compiler  ports.Compiler
	artifacts ports.ArtifactStore
	store     ports.ResultStore
	hasher    ports.Hasher
	tracer    ports.Tracer
	renderer  ports.Renderer
	logger    ports.Logger
}

// New creates a new Checker.
func New(
	compiler ports.Compiler,
	artifacts ports.ArtifactStore,
	store ports.ResultStore,
	hasher ports.Hasher,
	tracer ports.Tracer,
	renderer ports.Renderer,
	logger ports.Logger,
) *Checker {
	return &Checker{
		compiler:  compiler,
		artifacts: artifacts,
		store:     store,
		hasher:    hasher,
		tracer:    tracer,
		renderer:  renderer,
		logger:    logger,
	}
}

// Run checks the puzzles of m. The returned error wraps domain.ErrCheckFailed
// when the run went through and at least one puzzle failed. When the run was
// interrupted or broke, that error is returned joined with the failures
// collected so far, without domain.ErrCheckFailed.
func (c *Checker) Run(ctx context.Context, m *domain.Manifest, opts Options) (domain.Summary, error) {
	puzzles, err := m.Select(opts.Only)
	if err != nil {
		return domain.Summary{}, err
	}

	names := make([]string, len(puzzles))
	for i, p := range puzzles {
		names[i] = p.Name
	}
	c.renderer.OnPlan(names)

	summary := domain.Summary{RunID: uuid.NewString()}
	ctx, span := c.tracer.Start(ctx, "check",
		ports.WithAttribute("recheck.puzzles", len(puzzles)),
		ports.WithAttribute("recheck.run_id", summary.RunID),
	)
	defer span.End()

	start := time.Now()
	var failures, runErr error

	for i, p := range puzzles {
		if ctxErr := ctx.Err(); ctxErr != nil {
			summary.Skipped = len(puzzles) - i
			runErr = zerr.Wrap(ctxErr, "check interrupted")
			break
		}

		outcome, err := c.checkPuzzle(ctx, summary.RunID, m.Compiler, p, opts)
		if err != nil {
			summary.Skipped = len(puzzles) - i - 1
			runErr = err
			break
		}
		summary.Outcomes = append(summary.Outcomes, outcome)

		if failure := failureError(outcome); failure != nil {
			failures = errors.Join(failures, failure)
			if !opts.KeepGoing {
				summary.Skipped = len(puzzles) - i - 1
				break
			}
		}
	}

	summary.Elapsed = time.Since(start)
	c.renderer.OnSummary(summary)

	switch {
	case runErr != nil:
		err = errors.Join(runErr, failures)
	case failures != nil:
		err = errors.Join(domain.ErrCheckFailed, failures)
	default:
		return summary, nil
	}
	span.RecordError(err)
	return summary, err
}

// checkPuzzle reads, deletes, recompiles and compares a single puzzle.
// An error is returned only when the artifacts or the result store could not be accessed.
func (c *Checker) checkPuzzle(
	ctx context.Context,
	runID string,
	spec domain.CompilerSpec,
	p domain.Puzzle,
	opts Options,
) (domain.Outcome, error) {
	ctx, span := c.tracer.Start(ctx, "check "+p.Name, ports.WithAttribute(ports.AttrPuzzle, p.Name))
	defer span.End()

	start := time.Now()
	outcome := domain.Outcome{Puzzle: p}

	stored, found, err := c.artifacts.Read(p)
	if err != nil {
		span.RecordError(err)
		return outcome, err
	}
	outcome.Stored = stored
	outcome.Missing = !found

	if err := c.artifacts.Remove(p); err != nil {
		span.RecordError(err)
		return outcome, err
	}

	recompiled, compileErr := c.compiler.Compile(ctx, spec, p)
	if compileErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.restore(p, stored, found)
			span.RecordError(ctxErr)
			return outcome, zerr.With(zerr.Wrap(ctxErr, "check interrupted"), "puzzle", p.Name)
		}
		c.logger.Warn(fmt.Sprintf("compiling %s\n%+v", p.Name, compileErr))
		outcome.CompileErr = compileErr
		recompiled = ""
	} else if err := c.artifacts.Write(p, recompiled); err != nil {
		span.RecordError(err)
		return outcome, err
	}
	outcome.Recompiled = recompiled
	outcome.Duration = time.Since(start)

	status := outcome.Status()
	span.SetAttribute("recheck.status", string(status))

	if !status.Passed() {
		c.renderer.OnMismatch(outcome)
		if opts.Restore {
			c.restore(p, stored, found)
		}
		span.RecordError(failureError(outcome))
	}

	if err := c.store.Put(c.record(runID, outcome)); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// restore puts the committed artifact back in place.
func (c *Checker) restore(p domain.Puzzle, stored string, found bool) {
	var err error
	if found {
		err = c.artifacts.Write(p, stored)
	} else {
		err = c.artifacts.Remove(p)
	}
	if err != nil {
		c.logger.Error(zerr.With(zerr.Wrap(err, "failed to restore artifact"), "puzzle", p.Name))
	}
}

func (c *Checker) record(runID string, o domain.Outcome) domain.CheckRecord {
	r := domain.CheckRecord{
		RunID:          runID,
		Puzzle:         o.Puzzle.Name,
		Status:         o.Status(),
		StoredHash:     c.hasher.HashString(o.Stored),
		RecompiledHash: c.hasher.HashString(o.Recompiled),
		ArtifactSize:   uint64(len(o.Recompiled)),
		Timestamp:      time.Now(),
	}
	if o.CompileErr != nil {
		r.Error = o.CompileErr.Error()
	}
	return r
}

// failureError returns the error describing a failed outcome, or nil when it passed.
func failureError(o domain.Outcome) error {
	switch o.Status() {
	case domain.StatusMatch:
		return nil
	case domain.StatusMissingArtifact:
		return zerr.With(domain.ErrArtifactMissing, "puzzle", o.Puzzle.Name)
	case domain.StatusCompileFailed:
		return zerr.With(zerr.Wrap(o.CompileErr, domain.ErrArtifactMismatch.Error()), "puzzle", o.Puzzle.Name)
	default:
		return zerr.With(domain.ErrArtifactMismatch, "puzzle", o.Puzzle.Name)
	}
}
