package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recheck/internal/adapters/fs"
	"go.trai.ch/recheck/internal/core/domain"
)

func TestArtifactStore_Read(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.clvm.hex"), []byte("  ff0133\n\n"), 0o600))

	store := fs.NewArtifactStore()

	content, found, err := store.Read(domain.NewPuzzle(dir, "cat.clvm"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ff0133", content)
}

func TestArtifactStore_Read_Missing(t *testing.T) {
	store := fs.NewArtifactStore()

	content, found, err := store.Read(domain.NewPuzzle(t.TempDir(), "cat.clvm"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, content)
}

func TestArtifactStore_Read_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cat.clvm.hex"), 0o750))

	store := fs.NewArtifactStore()

	_, _, err := store.Read(domain.NewPuzzle(dir, "cat.clvm"))
	require.ErrorContains(t, err, domain.ErrArtifactReadFailed.Error())
}

func TestArtifactStore_RemoveAndWrite(t *testing.T) {
	dir := t.TempDir()
	puzzle := domain.NewPuzzle(dir, "p2_conditions.clvm")
	require.NoError(t, os.WriteFile(puzzle.ArtifactPath(), []byte("ff02\n"), 0o600))

	store := fs.NewArtifactStore()

	require.NoError(t, store.Remove(puzzle))
	assert.NoFileExists(t, puzzle.ArtifactPath())

	// Removing twice is fine.
	require.NoError(t, store.Remove(puzzle))

	require.NoError(t, store.Write(puzzle, "ff03"))
	data, err := os.ReadFile(puzzle.ArtifactPath())
	require.NoError(t, err)
	assert.Equal(t, "ff03\n", string(data))
}

func TestArtifactStore_Write_MissingDir(t *testing.T) {
	store := fs.NewArtifactStore()

	err := store.Write(domain.NewPuzzle(filepath.Join(t.TempDir(), "nope"), "cat.clvm"), "ff")
	require.ErrorContains(t, err, domain.ErrArtifactWriteFailed.Error())
}

func TestHasher_HashString(t *testing.T) {
	h := fs.NewHasher()

	got := h.HashString("ff0133")
	assert.Len(t, got, 16)
	assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64String("ff0133")), got)
	assert.Equal(t, got, h.HashString("ff0133"))
	assert.NotEqual(t, got, h.HashString("ff0134"))
	assert.Empty(t, h.HashString(""))
}
