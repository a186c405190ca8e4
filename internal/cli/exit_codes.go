package cli

import (
	stderrors "errors"

	"github.com/raveheart1/aocprep/internal/errors"
)

// Exit codes for the aocprep CLI.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitUsage indicates invalid or missing command arguments
	ExitUsage = 1

	// ExitConfiguration indicates missing or invalid configuration,
	// such as an absent session credential
	ExitConfiguration = 2

	// ExitRuntime indicates a failure during command execution
	ExitRuntime = 3
)

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case errors.Usage:
			return ExitUsage
		case errors.Configuration:
			return ExitConfiguration
		default:
			return ExitRuntime
		}
	}
	return ExitUsage
}
