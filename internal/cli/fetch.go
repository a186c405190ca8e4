package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/aocprep/internal/config"
	"github.com/raveheart1/aocprep/internal/errors"
	"github.com/raveheart1/aocprep/internal/fetch"
)

const fetchUsage = "aocprep fetch <day> [year]"

var fetchCmd = &cobra.Command{
	Use:   "fetch <day> [year]",
	Short: "Fetch puzzle input for a day and print it to stdout",
	Long: `Fetch your personal puzzle input and print it to stdout, verbatim.

The year defaults to the current calendar year. Authentication comes from,
in order: the AOCPREP_SESSION environment variable (a .env file is loaded),
the "session" config key, or a headers file named after the executable
(aocprep.txt next to the aocprep binary) containing HTTP header lines:

  Cookie: session=<your session token>

Redirect stdout to save the input:
  aocprep fetch 5 2021 > input.txt`,
	Args: cobra.MaximumNArgs(2),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	day := ""
	if len(args) > 0 {
		day = strings.TrimSpace(args[0])
	}
	if day == "" {
		return errors.NewUsageError("day argument is required", fetchUsage,
			"Pass the puzzle day as the first argument, e.g. 'aocprep fetch 5'")
	}

	year := time.Now().Format("2006")
	if len(args) > 1 && args[1] != "" {
		year = args[1]
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to load config")
	}

	headersPath, _ := config.HeadersFilePath()
	headers, err := fetch.ResolveHeaders(cfg.Session, headersPath)
	if err != nil {
		return errors.NewConfigError(
			"no session cookie found; cannot fetch puzzle input",
			"Set AOCPREP_SESSION=<token> in the environment or a .env file",
			"Or create "+headersPath+" containing one header per line, at minimum:",
			"    Cookie: session=<your session token>",
			"The token is the 'session' cookie your browser holds for "+cfg.Host)
	}

	client := fetch.NewClient(cfg)
	if err := client.FetchInput(cmd.Context(), day, year, headers, cmd.OutOrStdout()); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "fetch failed",
			"Check your network connection",
			"A 400 or 500 response usually means the session cookie expired; refresh it from your browser")
	}
	return nil
}
