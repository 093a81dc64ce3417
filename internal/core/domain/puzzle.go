// Package domain contains the core domain models of the recompile check.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Puzzle is a single puzzle source file together with its committed artifact.
type Puzzle struct {
	// Name is the source file name, e.g. "cat.clvm".
	Name string
	// Dir is the directory holding both the source and the artifact.
	Dir string
}

// NewPuzzle creates a Puzzle for the given file name inside dir.
func NewPuzzle(dir, name string) Puzzle {
	return Puzzle{Name: name, Dir: dir}
}

// SourcePath returns the path of the puzzle source file.
func (p Puzzle) SourcePath() string {
	return filepath.Join(p.Dir, p.Name)
}

// ArtifactName returns the file name of the compiled artifact, e.g. "cat.clvm.hex".
func (p Puzzle) ArtifactName() string {
	return p.Name + ArtifactSuffix
}

// ArtifactPath returns the path of the compiled artifact.
func (p Puzzle) ArtifactPath() string {
	return filepath.Join(p.Dir, p.ArtifactName())
}

// ValidatePuzzleName checks that name is a bare source file name.
func ValidatePuzzleName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return zerr.With(ErrInvalidPuzzleName, "reason", "empty name")
	case strings.ContainsAny(name, `/\`):
		return zerr.With(zerr.With(ErrInvalidPuzzleName, "puzzle", name), "reason", "contains path separator")
	case !strings.HasSuffix(name, SourceSuffix) || name == SourceSuffix:
		return zerr.With(zerr.With(ErrInvalidPuzzleName, "puzzle", name), "reason", "missing "+SourceSuffix+" suffix")
	}
	return nil
}
