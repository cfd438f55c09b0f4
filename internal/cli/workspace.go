package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/lines"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/runstore"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/workspacefinder"
	"github.com/fawaz-alesayi/advent-of-crab/internal/ports"
	"github.com/fawaz-alesayi/advent-of-crab/internal/puzzles"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	// detached is set when no advent.yaml was found and defaults are used.
	detached bool

	lines   ports.LineLoader
	catalog ports.PuzzleCatalog
	store   ports.ArtifactStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	var store ports.ArtifactStore
	if cfg.SaveRuns {
		store = runstore.NewJSONStore(root, cfg, runstore.WithIndex(true))
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		lines:   lines.NewLoader(),
		catalog: puzzles.Default(),
		store:   store,
	}, nil
}

// loadWorkspaceFor is loadWorkspace for commands that were given an explicit
// input file: outside a workspace they fall back to defaults rooted at the
// working directory and never save runs.
func loadWorkspaceFor(workspaceFlag, input string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil || strings.TrimSpace(input) == "" || strings.TrimSpace(workspaceFlag) != "" {
		return ws, err
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	wd, werr := os.Getwd()
	if werr != nil {
		return nil, fmt.Errorf("get working directory: %w", werr)
	}
	return &workspaceCtx{
		root:     wd,
		cfg:      domain.DefaultConfig(),
		detached: true,
		lines:    lines.NewLoader(),
		catalog:  puzzles.Default(),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `advent init`): %w", wd, err)
	}
	return root, nil
}

// resolveInputPath returns the input file for day. An explicit path is taken
// relative to the working directory; otherwise advent.yaml decides.
func resolveInputPath(ws *workspaceCtx, day int, input string) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return ws.cfg.InputPath(ws.root, day), nil
	}
	abs, err := filepath.Abs(in)
	if err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	return abs, nil
}

// partsFor returns the registered parts of day, or only the given part when
// part is non-zero.
func partsFor(catalog ports.PuzzleCatalog, day, part int) ([]puzzles.Puzzle, error) {
	if part != 0 {
		key := domain.PuzzleKey{Day: day, Part: part}
		if err := key.Validate(); err != nil {
			return nil, err
		}
		p, err := catalog.Lookup(key)
		if err != nil {
			return nil, err
		}
		return []puzzles.Puzzle{p}, nil
	}

	out := catalog.Day(day)
	if len(out) == 0 {
		return nil, &domain.OpError{
			Op:   "cli.puzzles",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: no puzzle registered for day %d", domain.ErrNotFound, day),
		}
	}
	return out, nil
}

// answeredKeys lists the configured answers in day/part order.
func answeredKeys(cfg domain.Config) []domain.PuzzleKey {
	keys := make([]domain.PuzzleKey, 0, len(cfg.Answers))
	for k := range cfg.Answers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Part < keys[j].Part
	})
	return keys
}
