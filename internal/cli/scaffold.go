package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/aocprep/internal/config"
	"github.com/raveheart1/aocprep/internal/errors"
	"github.com/raveheart1/aocprep/internal/logging"
	"github.com/raveheart1/aocprep/internal/scaffold"
)

const scaffoldUsage = "aocprep scaffold <day> [year]"

var scaffoldCmd = &cobra.Command{
	Use:     "scaffold <day> [year]",
	Aliases: []string{"new"},
	Short:   "Create a solution project for a puzzle day",
	Long: `Create a new solution project for a puzzle day.

The project is named <prefix><year>-<day> with the day zero-padded to two
digits (aoc-2019-03 for day 3). The year defaults to a fixed configured
year, not the current one, so scaffolding old puzzles stays convenient.

Four steps run in order, each attempted even if an earlier one failed:
  1. Generate the library skeleton (cargo new --lib by default)
  2. Overwrite src/lib.rs with the solution template
  3. Fetch the puzzle input into input.txt (runs 'aocprep fetch')
  4. Open the editor on src/lib.rs, detached

Rerunning for an existing day refreshes input.txt and the template; the
generator's directory-exists complaint is logged and skipped.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runScaffold,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().Bool("no-spinner", false, "Disable the fetch progress spinner")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	day := ""
	if len(args) > 0 {
		day = strings.TrimSpace(args[0])
	}
	if day == "" {
		return errors.NewUsageError("day argument is required", scaffoldUsage,
			"Pass the puzzle day as the first argument, e.g. 'aocprep scaffold 3'")
	}

	year := ""
	if len(args) > 1 {
		year = args[1]
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to load config")
	}

	noSpinner, _ := cmd.Flags().GetBool("no-spinner")
	log := logging.Default()

	s := &scaffold.Scaffolder{
		Config:    cfg,
		Log:       log,
		Stderr:    cmd.ErrOrStderr(),
		NoSpinner: noSpinner,
	}

	report := s.Run(cmd.Context(), day, year)
	if n := len(report.StepErrors); n > 0 {
		log.Warn().Int("failed_steps", n).Str("project", report.ProjectDir).
			Msg("scaffold finished with failures")
	} else {
		log.Info().Str("project", report.ProjectDir).Msg("scaffold complete")
	}

	// Step failures never fail the command; the sequence is best effort.
	return nil
}
