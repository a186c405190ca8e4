package config

// Default values for settings that are not zero-valued.
const (
	// DefaultHost is the puzzle site inputs are fetched from.
	DefaultHost = "adventofcode.com"

	// DefaultScaffoldYear is the fixed default year for scaffold.
	// Matches the solution workspace this tool was built around.
	DefaultScaffoldYear = 2019

	// DefaultProjectPrefix is prepended to generated project names.
	DefaultProjectPrefix = "aoc-"

	// DefaultEditor is used when neither config nor $EDITOR names one.
	DefaultEditor = "code"

	// DefaultTimeout is the HTTP request timeout in seconds.
	DefaultTimeout = 30
)

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# aocprep Configuration
# Priority: AOCPREP_* environment variables > .aocprep/config.yml > this file

# Fetch settings
host: adventofcode.com            # Puzzle site host
user_agent: ""                    # Custom User-Agent (empty = default)
session: ""                       # Session cookie value (prefer AOCPREP_SESSION or the headers file)
timeout: 30                       # HTTP timeout in seconds (0 = no timeout)

# Scaffold settings
scaffold:
  year: 2019                      # Default year when the positional year is omitted
  prefix: aoc-                    # Project name prefix: <prefix><year>-<day>
  workspace: ""                   # Directory for new projects (empty = executable's directory)
  generator: [cargo, new, --lib]  # Project generator command; project name is appended
  template: ""                    # Solution template file (empty = embedded default)
  editor: ""                      # Editor command (empty = $EDITOR, then "code")
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"host":       DefaultHost,
		"user_agent": "",
		"session":    "",
		"timeout":    DefaultTimeout,
		// scaffold: defaults reproduce the original workflow: a Rust
		// library crate per day, created next to the tool itself.
		"scaffold": map[string]interface{}{
			"year":      DefaultScaffoldYear,
			"prefix":    DefaultProjectPrefix,
			"workspace": "",
			"generator": []string{"cargo", "new", "--lib"},
			"template":  "",
			"editor":    "",
		},
	}
}
