// Package cli implements the aocprep command tree.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/raveheart1/aocprep/internal/errors"
	"github.com/raveheart1/aocprep/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "aocprep",
	Short: "Fetch Advent of Code puzzle input and scaffold solution projects",
	Long: `aocprep automates the start of an Advent of Code puzzle day.

It fetches your personal puzzle input from adventofcode.com using a session
cookie, and scaffolds a fresh solution project with the input file and a
solution template in place.

Examples:
  # Print day 5's input for the current year
  aocprep fetch 5

  # Print day 5's input for 2021
  aocprep fetch 5 2021

  # Create aoc-2019-03/ with template, input.txt, and an open editor
  aocprep scaffold 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to project config file (default .aocprep/config.yml)")
}

// Execute runs the root command. Structured errors are printed with
// remediation guidance; the returned error maps to an exit code via
// ExitCodeFor.
func Execute() error {
	// Session cookies commonly live in a local .env during development.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		var cliErr *errors.CLIError
		if stderrors.As(err, &cliErr) {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}
