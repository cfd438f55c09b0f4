package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "advent.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := writeConfig(t, "advent:\n  save_runs: false\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.SaveRuns {
		t.Fatalf("expected save_runs=false")
	}
	if cfg.Paths.InputsDir != "inputs" {
		t.Fatalf("expected inputs dir=inputs, got=%s", cfg.Paths.InputsDir)
	}
	if cfg.Paths.RunsDir != "runs" {
		t.Fatalf("expected runs dir=runs, got=%s", cfg.Paths.RunsDir)
	}
	if len(cfg.Answers) != 0 {
		t.Fatalf("expected no answers, got %v", cfg.Answers)
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	root := writeConfig(t, `advent:
  paths:
    inputs_dir: puzzles
    runs_dir: out
  inputs:
    1: day-1.txt
    2: input.txt
  answers:
    - {day: 1, part: 1, want: 1215}
    - {day: 1, part: 2, want: 1150}
    - {day: 2, part: 1, want: 1451208}
    - {day: 2, part: 2, want: 1620141160}
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if !cfg.SaveRuns {
		t.Fatalf("expected save_runs default true")
	}
	if cfg.Paths.InputsDir != "puzzles" || cfg.Paths.RunsDir != "out" {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
	if got := cfg.InputPath(root, 2); got != filepath.Join(root, "puzzles", "input.txt") {
		t.Fatalf("unexpected input path %s", got)
	}
	if w := cfg.Want(domain.PuzzleKey{Day: 2, Part: 2}); w == nil || *w != 1620141160 {
		t.Fatalf("expected day 2 part 2 answer, got %v", w)
	}
	if len(cfg.Answers) != 4 {
		t.Fatalf("expected 4 answers, got %d", len(cfg.Answers))
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadConfig_UnreadableIsIO(t *testing.T) {
	root := t.TempDir()
	// A directory in place of the file fails to read without being missing.
	if err := os.Mkdir(filepath.Join(root, "advent.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := writeConfig(t, "advent: [unterminated\n")
	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_ValidationNamesField(t *testing.T) {
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "day out of range",
			content: "advent:\n  answers:\n    - {day: 26, part: 1, want: 3}\n",
			field:   "advent.answers[0].day",
		},
		{
			name:    "bad part",
			content: "advent:\n  answers:\n    - {day: 1, part: 3, want: 3}\n",
			field:   "advent.answers[0].part",
		},
		{
			name:    "missing want",
			content: "advent:\n  answers:\n    - {day: 1, part: 1}\n",
			field:   "advent.answers[0].want",
		},
		{
			name:    "duplicate answer",
			content: "advent:\n  answers:\n    - {day: 1, part: 1, want: 1}\n    - {day: 1, part: 1, want: 2}\n",
			field:   "advent.answers[1]",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := writeConfig(t, c.content)
			_, err := LoadConfig(root)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %q in error, got %v", c.field, err)
			}
		})
	}
}
