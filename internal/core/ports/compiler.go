// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/recheck/internal/core/domain"
)

// Compiler compiles a puzzle source into its textual hex representation.
//
// The compiler itself is an external collaborator; implementations only
// know how to invoke it and collect its output.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile returns the trimmed hex text produced for the puzzle.
	Compile(ctx context.Context, spec domain.CompilerSpec, puzzle domain.Puzzle) (string, error)
}
