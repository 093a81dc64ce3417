package ports

import "go.trai.ch/recheck/internal/core/domain"

// ArtifactStore gives access to the committed compiled artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact_store.go -destination=mocks/mock_artifact_store.go -package=mocks
type ArtifactStore interface {
	// Read returns the trimmed artifact content.
	// The boolean is false when the artifact does not exist.
	Read(puzzle domain.Puzzle) (string, bool, error)

	// Remove deletes the artifact. A missing artifact is not an error.
	Remove(puzzle domain.Puzzle) error

	// Write stores content as the artifact of the puzzle.
	Write(puzzle domain.Puzzle, content string) error
}
