package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recheck/internal/adapters/cas"
	"go.trai.ch/recheck/internal/adapters/fs"
	"go.trai.ch/recheck/internal/adapters/telemetry"
	"go.trai.ch/recheck/internal/app"
	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/recheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	compiler *mocks.MockCompiler
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	manifest *domain.Manifest
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()

	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		compiler: mocks.NewMockCompiler(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		manifest: &domain.Manifest{
			Root:     dir,
			Dir:      filepath.Join(dir, "puzzles"),
			Compiler: domain.CompilerSpec{Command: []string{"run", "{{source}}"}},
			Names:    []string{"cat.clvm", "rl.clvm"},
		},
	}
	require.NoError(t, os.MkdirAll(h.manifest.Dir, domain.DirPerm))

	h.renderer.EXPECT().OnPlan(gomock.Any()).AnyTimes()
	h.renderer.EXPECT().OnSummary(gomock.Any()).AnyTimes()

	h.app = app.New(
		h.loader,
		h.compiler,
		fs.NewArtifactStore(),
		cas.NewOpener(),
		fs.NewHasher(),
		telemetry.NewNoOpTracer(),
		h.renderer,
		h.logger,
	).WithWorkDir(dir)
	return h
}

// store opens the result store of the manifest root as it is on disk.
func (h *harness) store(t *testing.T) ports.ResultStore {
	t.Helper()
	store, err := cas.NewOpener().Open(h.manifest.Root)
	require.NoError(t, err)
	return store
}

func (h *harness) writeArtifact(t *testing.T, name, content string) {
	t.Helper()
	path := domain.NewPuzzle(h.manifest.Dir, name).ArtifactPath()
	require.NoError(t, os.WriteFile(path, []byte(content+"\n"), domain.FilePerm))
}

func (h *harness) readArtifact(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(domain.NewPuzzle(h.manifest.Dir, name).ArtifactPath())
	require.NoError(t, err)
	return string(data)
}

func TestApp_Check_Match(t *testing.T) {
	h := newHarness(t)
	h.writeArtifact(t, "cat.clvm", "ff01")
	h.writeArtifact(t, "rl.clvm", "ff02")

	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	h.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.CompilerSpec, p domain.Puzzle) (string, error) {
			assert.NoFileExists(t, p.ArtifactPath())
			if p.Name == "cat.clvm" {
				return "ff01", nil
			}
			return "ff02", nil
		}).Times(2)

	err := h.app.Check(context.Background(), nil, app.CheckOptions{})
	require.NoError(t, err)

	assert.Equal(t, "ff01\n", h.readArtifact(t, "cat.clvm"))
	assert.Equal(t, "ff02\n", h.readArtifact(t, "rl.clvm"))

	record, err := h.store(t).Get("rl.clvm")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.StatusMatch, record.Status)
}

func TestApp_Check_MismatchWithRestore(t *testing.T) {
	h := newHarness(t)
	h.writeArtifact(t, "cat.clvm", "ff01")

	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	h.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return("ff0101", nil).Times(1)
	h.renderer.EXPECT().OnMismatch(gomock.Any()).Times(1)

	err := h.app.Check(context.Background(), []string{"cat.clvm"}, app.CheckOptions{Restore: true})
	require.ErrorIs(t, err, domain.ErrCheckFailed)

	assert.Equal(t, "ff01\n", h.readArtifact(t, "cat.clvm"))
}

func TestApp_Check_MismatchLeavesFreshArtifact(t *testing.T) {
	h := newHarness(t)
	h.writeArtifact(t, "cat.clvm", "ff01")

	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	h.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return("ff0101", nil).Times(1)
	h.renderer.EXPECT().OnMismatch(gomock.Any()).Times(1)

	err := h.app.Check(context.Background(), []string{"cat.clvm"}, app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrCheckFailed)

	assert.Equal(t, "ff0101\n", h.readArtifact(t, "cat.clvm"))
}

func TestApp_Check_LoadError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.manifest.Root).Return(nil, errors.New("bad yaml"))

	err := h.app.Check(context.Background(), nil, app.CheckOptions{})
	require.ErrorContains(t, err, "failed to load manifest")
	assert.NotErrorIs(t, err, domain.ErrCheckFailed)
}

func TestApp_List(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)

	puzzles, err := h.app.List(context.Background())
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
	assert.Equal(t, "cat.clvm", puzzles[0].Name)
	assert.Equal(t, h.manifest.Dir, puzzles[0].Dir)
}

func TestApp_Status(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	store := h.store(t)
	require.NoError(t, store.Put(domain.CheckRecord{Puzzle: "rl.clvm", Status: domain.StatusMismatch}))
	require.NoError(t, store.Put(domain.CheckRecord{Puzzle: "old.clvm", Status: domain.StatusMatch}))

	report, err := h.app.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "cat.clvm", report.Records[0].Puzzle)
	assert.Equal(t, domain.StatusUnknown, report.Records[0].Status)
	assert.Equal(t, domain.StatusMismatch, report.Records[1].Status)

	require.Len(t, report.Unlisted, 1)
	assert.Equal(t, "old.clvm", report.Unlisted[0].Puzzle)
}

func TestApp_Check_FromSubdirectoryUsesManifestRoot(t *testing.T) {
	h := newHarness(t)
	h.writeArtifact(t, "cat.clvm", "ff01")
	t.Chdir(h.manifest.Dir)

	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	h.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return("ff01", nil).Times(1)

	require.NoError(t, h.app.Check(context.Background(), []string{"cat.clvm"}, app.CheckOptions{}))

	assert.FileExists(t, domain.ResultsPath(h.manifest.Root))
	assert.NoDirExists(t, filepath.Join(h.manifest.Dir, domain.StateDirName))
}

func TestApp_Clean(t *testing.T) {
	h := newHarness(t)
	t.Chdir(h.manifest.Dir)
	h.loader.EXPECT().Load(h.manifest.Root).Return(h.manifest, nil)
	require.NoError(t, h.store(t).Put(domain.CheckRecord{Puzzle: "cat.clvm"}))
	require.DirExists(t, domain.StatePath(h.manifest.Root))

	h.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, h.app.Clean(context.Background()))

	assert.NoDirExists(t, domain.StatePath(h.manifest.Root))
	records, err := h.store(t).All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestApp_SetJSONLogs(t *testing.T) {
	h := newHarness(t)

	// Mock loggers do not support JSON output; the call is a no-op.
	h.app.SetJSONLogs(true)
}
