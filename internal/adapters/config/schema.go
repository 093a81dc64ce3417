package config

// Manifest represents the structure of the recheck.yaml configuration file.
type Manifest struct {
	Version  string      `yaml:"version"`
	Dir      string      `yaml:"dir"`
	Compiler CompilerDTO `yaml:"compiler"`
	Puzzles  []string    `yaml:"puzzles"`
}

// CompilerDTO represents the compiler invocation in the configuration.
type CompilerDTO struct {
	Cmd         []string          `yaml:"cmd"`
	Environment map[string]string `yaml:"environment"`
}
