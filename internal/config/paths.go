package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/aocprep/config.yml
// - macOS: ~/Library/Application Support/aocprep/config.yml
// - Windows: %APPDATA%\aocprep\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "aocprep", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .aocprep/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".aocprep", "config.yml")
}

// HeadersFilePath returns the path to the legacy headers file: the
// executable's own name with its extension replaced by .txt, located in
// the executable's directory. A fetch.exe invocation looks for fetch.txt.
func HeadersFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	base := filepath.Base(exe)
	base = base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(filepath.Dir(exe), base+".txt"), nil
}

// ExecutableDir returns the directory containing the running executable.
// The scaffolder creates projects there unless a workspace is configured.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
