package domain

import (
	"strings"
	"time"
)

// Status is the result of checking a single puzzle.
type Status string

const (
	// StatusMatch indicates the recompiled output equals the committed artifact.
	StatusMatch Status = "match"
	// StatusMismatch indicates the recompiled output differs from the committed artifact.
	StatusMismatch Status = "mismatch"
	// StatusCompileFailed indicates the compiler failed; the comparison ran against empty output.
	StatusCompileFailed Status = "compile_failed"
	// StatusMissingArtifact indicates there was no committed artifact to compare against.
	StatusMissingArtifact Status = "missing_artifact"
	// StatusUnknown is used for records that could not be interpreted.
	StatusUnknown Status = "unknown"
)

// Passed reports whether the status counts as a successful check.
func (s Status) Passed() bool {
	return s == StatusMatch
}

// NormalizeStatus converts a string to a Status, defaulting to unknown.
func NormalizeStatus(s string) Status {
	switch Status(strings.ToLower(s)) {
	case StatusMatch:
		return StatusMatch
	case StatusMismatch:
		return StatusMismatch
	case StatusCompileFailed:
		return StatusCompileFailed
	case StatusMissingArtifact:
		return StatusMissingArtifact
	default:
		return StatusUnknown
	}
}

// Outcome is the full result of checking one puzzle.
type Outcome struct {
	Puzzle     Puzzle
	Stored     string
	Recompiled string
	// Missing is set when no committed artifact existed.
	Missing bool
	// CompileErr is set when the compiler failed. Recompiled is empty in that case.
	CompileErr error
	Duration   time.Duration
}

// Status derives the status of the outcome.
// A compile failure never passes, even when the stored artifact is empty.
func (o Outcome) Status() Status {
	if o.Missing {
		return StatusMissingArtifact
	}
	if o.CompileErr != nil {
		return StatusCompileFailed
	}
	if o.Stored == o.Recompiled {
		return StatusMatch
	}
	return StatusMismatch
}

// CheckRecord is the persisted summary of the last check of a puzzle.
type CheckRecord struct {
	RunID          string    `json:"run_id,omitzero"`
	Puzzle         string    `json:"puzzle,omitzero"`
	Status         Status    `json:"status,omitzero"`
	StoredHash     string    `json:"stored_hash,omitzero"`
	RecompiledHash string    `json:"recompiled_hash,omitzero"`
	ArtifactSize   uint64    `json:"artifact_size,omitzero"`
	Error          string    `json:"error,omitzero"`
	Timestamp      time.Time `json:"timestamp,omitzero"`
}

// Summary aggregates the outcomes of a check run.
type Summary struct {
	// RunID identifies the run; every record it stores carries the same ID.
	RunID    string
	Outcomes []Outcome
	// Skipped counts puzzles that were not checked because the run stopped early.
	Skipped int
	Elapsed time.Duration
}

// Failed returns the outcomes that did not pass.
func (s Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if !o.Status().Passed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Passed returns the number of outcomes that passed.
func (s Summary) Passed() int {
	return len(s.Outcomes) - len(s.Failed())
}
