package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/aocprep/internal/config"
	"github.com/raveheart1/aocprep/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write a commented default configuration file.

By default the config is written to .aocprep/config.yml in the current
directory. Use --global to write the user-level config instead.

Examples:
  aocprep init             # Create .aocprep/config.yml
  aocprep init --global    # Create the user config (XDG config dir)
  aocprep init --force     # Overwrite an existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("global", "g", false, "Write the user-level config")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	path := config.ProjectConfigPath()
	if global {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "failed to resolve user config dir")
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewConfigError(
			fmt.Sprintf("config already exists at %s", path),
			"Use --force to overwrite it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to create config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to write config")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Config written to %s\n", path)
	return nil
}
