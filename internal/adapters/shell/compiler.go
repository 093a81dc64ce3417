// Package shell runs the external puzzle compiler.
package shell

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	placeholderSource = "{{source}}"
	placeholderDir    = "{{dir}}"
	placeholderName   = "{{name}}"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by running the configured command.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile runs the compiler for puzzle in spec.WorkDir and returns its trimmed stdout.
// Lines written to stderr are forwarded to the logger as warnings.
func (c *Compiler) Compile(ctx context.Context, spec domain.CompilerSpec, puzzle domain.Puzzle) (string, error) {
	argv := expandCommand(spec.Command, puzzle)
	if len(argv) == 0 || argv[0] == "" {
		return "", domain.ErrEmptyCompilerCommand
	}

	name := argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), spec.Environment)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Env = cmdEnv
	cmd.Dir = spec.WorkDir

	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: c.logger, prefix: puzzle.Name + ": "}
	cmd.Stdout = &stdout
	cmd.Stderr = stderrLog

	err := cmd.Run()
	_ = stderrLog.Close()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "puzzle", puzzle.Name)
		return "", zerr.With(wrapped, "exit_code", exitCode)
	}

	out := strings.TrimSpace(stdout.String())
	if err := validateHex(out); err != nil {
		return "", zerr.With(err, "puzzle", puzzle.Name)
	}
	return out, nil
}

// expandCommand replaces the per-puzzle placeholders in every argument.
func expandCommand(command []string, puzzle domain.Puzzle) []string {
	r := strings.NewReplacer(
		placeholderSource, puzzle.SourcePath(),
		placeholderDir, puzzle.Dir,
		placeholderName, puzzle.Name,
	)
	argv := make([]string, len(command))
	for i, arg := range command {
		argv[i] = r.Replace(arg)
	}
	return argv
}

func validateHex(out string) error {
	if out == "" {
		return zerr.With(domain.ErrCompilerOutputInvalid, "reason", "empty output")
	}
	if _, err := hex.DecodeString(out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCompilerOutputInvalid.Error()), "output", truncate(out, 32))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Warn(w.prefix + msg)
}

// resolveEnvironment overlays the manifest environment on the inherited one.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	set := func(k, v string) {
		if _, ok := envMap[k]; !ok {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for k, v := range overrides {
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
