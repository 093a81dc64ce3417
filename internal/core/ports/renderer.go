package ports

import (
	"time"

	"go.trai.ch/recheck/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples the check loop and telemetry from presentation.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlan is called once before the first puzzle with the puzzles to check.
	OnPlan(puzzles []string)

	// OnPuzzleStart is called when a puzzle check begins.
	// spanID identifies this check; name is the puzzle name.
	OnPuzzleStart(spanID, name string, startTime time.Time)

	// OnPuzzleComplete is called when a puzzle check finishes.
	// err is nil when the puzzle passed.
	OnPuzzleComplete(spanID string, endTime time.Time, err error)

	// OnMismatch prints the diagnostic for a failed comparison.
	OnMismatch(outcome domain.Outcome)

	// OnSummary prints the final summary of the run.
	OnSummary(summary domain.Summary)
}
