package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/logger"
	"github.com/fawaz-alesayi/advent-of-crab/internal/infra/workspacefinder"
)

func Execute() {
	cmd, closeLog := newRootCmd()
	err := cmd.Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand. The returned func flushes the log file
// opened by the persistent pre-run hook.
func newRootCmd() (*cobra.Command, func() error) {
	var debug bool
	cleanup := func() error { return nil }

	cmd := &cobra.Command{
		Use:          "advent",
		Short:        "advent: solve puzzle inputs and check them against known answers",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			if f := c.Flags().Lookup("workspace"); f != nil && f.Value.String() != "" {
				wd = f.Value.String()
			}
			wd, _ = filepath.Abs(wd)

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			// Logging is best effort; a read-only directory must not block solving.
			if cl, lerr := logger.Setup(logger.Config{Root: logRoot, Debug: debug}); lerr == nil {
				cleanup = cl
				if debug {
					fmt.Fprintf(c.ErrOrStderr(), "debug log: %s\n", logger.Path())
				}
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .advent/logs/advent.log")

	cmd.AddCommand(
		solveCmd(),
		checkCmd(),
		validateCmd(),
		puzzlesCmd(),
		initCmd(),
		versionCmd(),
	)

	return cmd, func() error { return cleanup() }
}
