package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// CompilerSpec describes how the external compiler is invoked.
type CompilerSpec struct {
	// Command is the argv template. The placeholders {{source}}, {{dir}} and {{name}}
	// are replaced per puzzle.
	Command []string
	// Environment holds variables that override the inherited process environment.
	Environment map[string]string
	// WorkDir is the directory the compiler runs in, normally the manifest root.
	// Empty means the current directory.
	WorkDir string
}

// Manifest is the ordered list of puzzles to check and how to compile them.
type Manifest struct {
	// Root is the directory the manifest was loaded from.
	Root string
	// Dir is the puzzle directory.
	Dir string
	// Compiler is the compiler invocation.
	Compiler CompilerSpec
	// Names holds the puzzle file names in check order.
	Names []string
}

// DefaultManifest returns the built-in manifest rooted at root.
func DefaultManifest(root string) *Manifest {
	return &Manifest{
		Root:     root,
		Dir:      DefaultPuzzleDir,
		Compiler: CompilerSpec{Command: DefaultCompilerCommand(), WorkDir: root},
		Names:    DefaultPuzzles(),
	}
}

// Puzzles returns the manifest puzzles in check order.
func (m *Manifest) Puzzles() []Puzzle {
	puzzles := make([]Puzzle, len(m.Names))
	for i, name := range m.Names {
		puzzles[i] = NewPuzzle(m.Dir, name)
	}
	return puzzles
}

// Select returns the puzzles named in only, keeping manifest order.
// An empty selection returns every puzzle.
func (m *Manifest) Select(only []string) ([]Puzzle, error) {
	if len(only) == 0 {
		return m.Puzzles(), nil
	}

	for _, name := range only {
		if !slices.Contains(m.Names, name) {
			return nil, zerr.With(ErrUnknownPuzzle, "puzzle", name)
		}
	}

	var selected []Puzzle
	for _, p := range m.Puzzles() {
		if slices.Contains(only, p.Name) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// Validate checks the puzzle names and compiler command.
func (m *Manifest) Validate() error {
	if len(m.Names) == 0 {
		return ErrNoPuzzles
	}
	if len(m.Compiler.Command) == 0 || m.Compiler.Command[0] == "" {
		return ErrEmptyCompilerCommand
	}

	seen := make(map[string]struct{}, len(m.Names))
	for _, name := range m.Names {
		if err := ValidatePuzzleName(name); err != nil {
			return err
		}
		if _, ok := seen[name]; ok {
			return zerr.With(ErrDuplicatePuzzle, "puzzle", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
