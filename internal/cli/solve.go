package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/logger"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/workspacefinder"
	"github.com/fawaz-alesayi/advent-of-crab/internal/usecase"
)

func solveCmd() *cobra.Command {
	var workspace string
	var day int
	var part int
	var input string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve one day (or one part of it) against its input",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspaceFor(workspace, input)
			if err != nil {
				return err
			}

			parts, err := partsFor(ws.catalog, day, part)
			if err != nil {
				return err
			}

			path, err := resolveInputPath(ws, day, input)
			if err != nil {
				return err
			}

			reqs := make([]usecase.SolveRequest, 0, len(parts))
			for _, p := range parts {
				reqs = append(reqs, usecase.SolveRequest{
					Key:       p.Key,
					InputPath: path,
					Want:      ws.cfg.Want(p.Key),
				})
			}

			label := fmt.Sprintf("day %d", day)
			if part != 0 {
				label = domain.PuzzleKey{Day: day, Part: part}.String()
			}

			return solveAndReport(cmd, ws, label, reqs, noSave, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day (required)")
	c.Flags().IntVarP(&part, "part", "p", 0, "Puzzle part (1 or 2; both if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Input file (optional; defaults to the workspace input of the day)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("day")
	return c
}

func checkCmd() *cobra.Command {
	var workspace string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "check",
		Short: "Solve every puzzle part that has a known answer in advent.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			keys := answeredKeys(ws.cfg)
			if len(keys) == 0 {
				return fmt.Errorf("no answers configured in %s", ws.root)
			}

			reqs := make([]usecase.SolveRequest, 0, len(keys))
			for _, k := range keys {
				reqs = append(reqs, usecase.SolveRequest{
					Key:       k,
					InputPath: ws.cfg.InputPath(ws.root, k.Day),
					Want:      ws.cfg.Want(k),
				})
			}

			return solveAndReport(cmd, ws, "check", reqs, noSave, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func solveAndReport(cmd *cobra.Command, ws *workspaceCtx, label string, reqs []usecase.SolveRequest, noSave bool, format string) error {
	var store = ws.store
	if noSave || ws.detached {
		store = nil
	}
	if ws.detached {
		fmt.Fprintf(cmd.ErrOrStderr(), "no %s found; using defaults, run not saved\n", workspacefinder.ConfigFile)
	}

	uc := usecase.NewSolvePuzzles(ws.catalog, ws.lines, store, usecase.WithLogger(logger.L()))

	run, runID, err := uc.Execute(cmd.Context(), label, reqs)
	if err != nil {
		// The run is still worth showing when only saving failed.
		_ = printRun(os.Stdout, run, runID, format)
		return err
	}

	if err := printRun(os.Stdout, run, runID, format); err != nil {
		return err
	}
	return runOutcome(run)
}
