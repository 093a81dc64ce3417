package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recheck/cmd/recheck/commands"
	"go.trai.ch/recheck/internal/app"
	"go.trai.ch/recheck/internal/build"
	"go.trai.ch/recheck/internal/core/domain"
)

type mockApp struct {
	checkFunc  func(ctx context.Context, puzzles []string, opts app.CheckOptions) error
	puzzles    []domain.Puzzle
	report     app.StatusReport
	err        error
	cleaned    bool
	jsonLogs   bool
	checkCalls int
}

func (m *mockApp) Check(ctx context.Context, puzzles []string, opts app.CheckOptions) error {
	m.checkCalls++
	if m.checkFunc != nil {
		return m.checkFunc(ctx, puzzles, opts)
	}
	return m.err
}

func (m *mockApp) List(_ context.Context) ([]domain.Puzzle, error) {
	return m.puzzles, m.err
}

func (m *mockApp) Status(_ context.Context) (app.StatusReport, error) {
	return m.report, m.err
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return m.err
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Check(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.CheckOptions
		var capturedPuzzles []string

		m := &mockApp{
			checkFunc: func(_ context.Context, puzzles []string, opts app.CheckOptions) error {
				capturedOpts = opts
				capturedPuzzles = puzzles
				return nil
			},
		}

		_, err := execute(t, m, "check", "cat.clvm", "--keep-going", "--restore")
		require.NoError(t, err)
		assert.Equal(t, 1, m.checkCalls)
		assert.True(t, capturedOpts.KeepGoing)
		assert.True(t, capturedOpts.Restore)
		assert.Equal(t, []string{"cat.clvm"}, capturedPuzzles)
	})

	t.Run("no puzzles checks everything", func(t *testing.T) {
		var capturedPuzzles []string
		m := &mockApp{
			checkFunc: func(_ context.Context, puzzles []string, _ app.CheckOptions) error {
				capturedPuzzles = puzzles
				return nil
			},
		}

		_, err := execute(t, m, "check")
		require.NoError(t, err)
		assert.Empty(t, capturedPuzzles)
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		m := &mockApp{err: domain.ErrCheckFailed}

		_, err := execute(t, m, "check")
		require.ErrorIs(t, err, domain.ErrCheckFailed)
	})

	t.Run("json flag", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "--json", "check")
		require.NoError(t, err)
		assert.True(t, m.jsonLogs)
	})
}

func TestCommands_List(t *testing.T) {
	m := &mockApp{puzzles: []domain.Puzzle{
		domain.NewPuzzle("p", "cat.clvm"),
		domain.NewPuzzle("p", "rl.clvm"),
	}}

	out, err := execute(t, m, "list")
	require.NoError(t, err)
	assert.Equal(t, "cat.clvm\nrl.clvm\n", out)
}

func TestCommands_List_Error(t *testing.T) {
	m := &mockApp{err: errors.New("bad manifest")}

	_, err := execute(t, m, "list")
	require.ErrorContains(t, err, "bad manifest")
}

func TestCommands_Status(t *testing.T) {
	m := &mockApp{report: app.StatusReport{
		Records: []domain.CheckRecord{
			{Puzzle: "cat.clvm", Status: domain.StatusUnknown},
			{
				RunID:        "0b9e2c41-7d7a-4b55-9d1e-3f6a2b7c8d90",
				Puzzle:       "rl.clvm",
				Status:       domain.StatusMatch,
				ArtifactSize: 2048,
				Timestamp:    time.Now().Add(-time.Hour),
			},
		},
		Unlisted: []domain.CheckRecord{
			{Puzzle: "old.clvm", Status: domain.StatusMismatch, Timestamp: time.Now()},
		},
	}}

	out, err := execute(t, m, "status")
	require.NoError(t, err)
	assert.Regexp(t, `STATUS\s+PUZZLE\s+SIZE\s+CHECKED\s+RUN`, out)
	assert.Regexp(t, `unknown\s+cat\.clvm`, out)
	assert.Regexp(t, `match\s+rl\.clvm\s+2\.0 kB\s+1 hour ago\s+0b9e2c41\s`, out)
	assert.Regexp(t, `mismatch\s+old\.clvm \(unlisted\)`, out)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "clean")
	require.NoError(t, err)
	assert.True(t, m.cleaned)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "recheck version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "recheck version "+build.Version)
}
