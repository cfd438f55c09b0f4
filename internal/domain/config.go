package domain

import (
	"fmt"
	"path/filepath"
)

// Config represents the workspace configuration loaded from advent.yaml.
type Config struct {
	Paths    PathsConfig
	SaveRuns bool

	// Inputs overrides the input file name per day (relative to InputsDir
	// unless absolute).
	Inputs map[int]string

	// Answers holds the known expected answers.
	Answers map[PuzzleKey]int
}

type PathsConfig struct {
	InputsDir string
	RunsDir   string
}

// DefaultConfig provides sane defaults if advent.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			InputsDir: "inputs",
			RunsDir:   "runs",
		},
		SaveRuns: true,
		Inputs:   map[int]string{},
		Answers:  map[PuzzleKey]int{},
	}
}

// InputPath resolves the input file of a day inside the workspace root.
func (c Config) InputPath(root string, day int) string {
	name := c.Inputs[day]
	if name == "" {
		name = fmt.Sprintf("day%02d.txt", day)
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(root, c.Paths.InputsDir, name)
}

// Want returns the configured expected answer for k, if any.
func (c Config) Want(k PuzzleKey) *int {
	v, ok := c.Answers[k]
	if !ok {
		return nil
	}
	return &v
}
