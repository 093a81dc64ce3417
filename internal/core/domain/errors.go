package domain

import "go.trai.ch/zerr"

var (
	// ErrArtifactMismatch is returned when a recompiled puzzle differs from its committed artifact.
	ErrArtifactMismatch = zerr.New("compile resulted in different output")

	// ErrArtifactMissing is returned when the committed artifact of a puzzle does not exist.
	ErrArtifactMissing = zerr.New("compiled artifact not found")

	// ErrArtifactReadFailed is returned when the committed artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read compiled artifact")

	// ErrArtifactRemoveFailed is returned when the committed artifact cannot be deleted.
	ErrArtifactRemoveFailed = zerr.New("failed to remove compiled artifact")

	// ErrArtifactWriteFailed is returned when an artifact cannot be written back to disk.
	ErrArtifactWriteFailed = zerr.New("failed to write compiled artifact")

	// ErrCompileFailed is returned when the external compiler exits unsuccessfully.
	ErrCompileFailed = zerr.New("puzzle compilation failed")

	// ErrCompilerOutputInvalid is returned when the compiler output is not hex text.
	ErrCompilerOutputInvalid = zerr.New("compiler output is not valid hex")

	// ErrEmptyCompilerCommand is returned when the manifest declares no compiler command.
	ErrEmptyCompilerCommand = zerr.New("compiler command is empty")

	// ErrUnknownPuzzle is returned when a requested puzzle is not listed in the manifest.
	ErrUnknownPuzzle = zerr.New("puzzle not listed in manifest")

	// ErrInvalidPuzzleName is returned when a puzzle name is empty, contains a path separator,
	// or lacks the source suffix.
	ErrInvalidPuzzleName = zerr.New("invalid puzzle name")

	// ErrDuplicatePuzzle is returned when a puzzle appears twice in the manifest.
	ErrDuplicatePuzzle = zerr.New("duplicate puzzle")

	// ErrNoPuzzles is returned when the manifest lists no puzzles.
	ErrNoPuzzles = zerr.New("no puzzles to check")

	// ErrCheckFailed is returned when at least one puzzle failed the recompile check.
	ErrCheckFailed = zerr.New("recompile check failed")

	// ErrConfigReadFailed is returned when the manifest file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read manifest file")

	// ErrConfigParseFailed is returned when the manifest file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse manifest file")

	// ErrStoreCreateFailed is returned when the result store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result store directory")

	// ErrStoreReadFailed is returned when the result store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read result store")

	// ErrStoreUnmarshalFailed is returned when the result store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal result store")

	// ErrStoreMarshalFailed is returned when the result store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal result store")

	// ErrStoreWriteFailed is returned when the result store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write result store")
)
