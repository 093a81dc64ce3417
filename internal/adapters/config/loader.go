// Package config provides the manifest loader for recheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only manifest schema version understood by the loader.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds recheck.yaml in cwd or one of its parents and returns the manifest.
// Without a manifest file the built-in puzzle list is used, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "path", cwd)
	}

	configPath, found := findManifest(absCwd)
	if !found {
		m := domain.DefaultManifest(absCwd)
		m.Dir = resolveDir(m.Root, m.Dir)
		m.Compiler.WorkDir = m.Root
		return m, nil
	}
	return l.loadManifest(configPath)
}

func findManifest(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadManifest(configPath string) (*domain.Manifest, error) {
	var dto Manifest
	if err := readAndUnmarshalYAML(configPath, &dto); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if dto.Version != "" && dto.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, reading it as version %s",
			dto.Version, domain.ManifestFileName, supportedVersion))
	}

	root := filepath.Dir(configPath)
	m := &domain.Manifest{
		Root: root,
		Dir:  resolveDir(root, dto.Dir),
		Compiler: domain.CompilerSpec{
			Command:     dto.Compiler.Cmd,
			Environment: dto.Compiler.Environment,
			WorkDir:     root,
		},
		Names: dto.Puzzles,
	}

	if len(m.Compiler.Command) == 0 {
		m.Compiler.Command = domain.DefaultCompilerCommand()
	}
	if len(m.Names) == 0 {
		m.Names = domain.DefaultPuzzles()
	}

	if err := m.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return m, nil
}

// resolveDir makes the puzzle directory absolute relative to the manifest root.
func resolveDir(root, dir string) string {
	if dir == "" {
		dir = domain.DefaultPuzzleDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Clean(filepath.Join(root, dir))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
