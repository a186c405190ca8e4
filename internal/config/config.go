// Package config provides hierarchical configuration management for aocprep
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.aocprep/config.yml) > user config
// (~/.config/aocprep/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ScaffoldConfig holds settings for the scaffold subcommand.
type ScaffoldConfig struct {
	// Year is the default puzzle year when the positional year argument is
	// omitted. Unlike fetch, scaffold deliberately defaults to a fixed year
	// rather than the current one.
	Year int `koanf:"year"`

	// Prefix is prepended to the generated project name: <prefix><year>-<day>.
	Prefix string `koanf:"prefix"`

	// Workspace is the directory new projects are created in.
	// Empty means the directory containing the aocprep executable.
	Workspace string `koanf:"workspace"`

	// Generator is the external command that creates the project skeleton.
	// The project name is appended as the final argument.
	Generator []string `koanf:"generator"`

	// Template is a path to a solution template file. Empty means the
	// embedded default template.
	Template string `koanf:"template"`

	// Editor is the editor command launched on the generated source file.
	// Empty means $EDITOR, falling back to "code".
	Editor string `koanf:"editor"`
}

// Configuration represents the aocprep CLI tool configuration.
type Configuration struct {
	// Host is the puzzle site host used to build input URLs.
	Host string `koanf:"host"`

	// UserAgent is sent with every input request.
	UserAgent string `koanf:"user_agent"`

	// Session is the session cookie value. Usually supplied via the
	// AOCPREP_SESSION environment variable or a headers file rather than
	// written into config.
	Session string `koanf:"session"`

	// Timeout is the HTTP request timeout in seconds (0 = client default).
	Timeout int `koanf:"timeout"`

	Scaffold ScaffoldConfig `koanf:"scaffold"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// An empty projectConfigPath uses the default .aocprep/config.yml.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}
	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Scaffold.Workspace = expandHomePath(cfg.Scaffold.Workspace)
	cfg.Scaffold.Template = expandHomePath(cfg.Scaffold.Template)
	return &cfg, nil
}

// loadDefaults loads the default configuration values
func loadDefaults(k *koanf.Koanf) {
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config file if present
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil
	}
	return loadYAMLFile(k, path)
}

// loadProjectConfig loads the project-level config file if present
func loadProjectConfig(k *koanf.Koanf, path string) error {
	if path == "" {
		path = ProjectConfigPath()
	}
	return loadYAMLFile(k, path)
}

func loadYAMLFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
// Empty-valued variables are treated as unset so they fall through to the
// config files rather than wiping a configured value.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	provider := env.ProviderWithValue("AOCPREP_", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return envTransform(key), value
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// A double underscore separates nesting levels:
// AOCPREP_SESSION -> session, AOCPREP_SCAFFOLD__YEAR -> scaffold.year
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "AOCPREP_"))
	return strings.ReplaceAll(key, "__", ".")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
