package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var day int
	var input string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that an input file parses (no solving)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspaceFor(workspace, input)
			if err != nil {
				return err
			}

			path, err := resolveInputPath(ws, day, input)
			if err != nil {
				return err
			}

			// Both parts of a day read the same input format.
			key := domain.PuzzleKey{Day: day, Part: 1}
			uc := usecase.NewValidateInput(ws.catalog, ws.lines)
			n, err := uc.Execute(cmd.Context(), key, path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d records in %s)\n", n, path)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day (required)")
	c.Flags().StringVarP(&input, "input", "i", "", "Input file (optional; defaults to the workspace input of the day)")

	_ = c.MarkFlagRequired("day")
	return c
}
