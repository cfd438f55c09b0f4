package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fawaz-alesayi/advent-of-crab/internal/puzzles"
)

func puzzlesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "puzzles",
		Short: "Inspect the registered puzzles",
	}

	c.AddCommand(puzzlesListCmd())
	return c
}

func puzzlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzle parts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := puzzles.Default().All()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no puzzles registered)")
				return nil
			}

			th := defaultTheme()
			for _, p := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s  %s\n", p.Key, th.Faint.Render(p.Title))
			}
			return nil
		},
	}
}
