package scaffold

import "embed"

// templateFS embeds the default solution template used when no template
// file is configured.
//
//go:embed templates/lib.rs
var templateFS embed.FS

// DefaultTemplate returns the embedded solution template.
func DefaultTemplate() ([]byte, error) {
	return templateFS.ReadFile("templates/lib.rs")
}
