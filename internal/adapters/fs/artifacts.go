// Package fs implements filesystem access to puzzle artifacts.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore reads and writes the <name>.hex files next to puzzle sources.
type ArtifactStore struct{}

// NewArtifactStore creates a new ArtifactStore.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// Read returns the artifact content with surrounding whitespace removed.
func (s *ArtifactStore) Read(puzzle domain.Puzzle) (string, bool, error) {
	path := puzzle.ArtifactPath()
	data, err := os.ReadFile(path) //nolint:gosec // Path is built from the manifest
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Remove deletes the artifact. A missing file is ignored.
func (s *ArtifactStore) Remove(puzzle domain.Puzzle) error {
	path := puzzle.ArtifactPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
	}
	return nil
}

// Write stores content followed by a newline.
func (s *ArtifactStore) Write(puzzle domain.Puzzle, content string) error {
	path := puzzle.ArtifactPath()
	//nolint:gosec // Path is built from the manifest
	if err := os.WriteFile(path, []byte(content+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	return nil
}
