// Package errors provides structured error handling for the aocprep CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// Category represents the type of error that occurred.
type Category int

const (
	// Usage errors are caused by invalid or missing command arguments.
	Usage Category = iota
	// Configuration errors are caused by invalid or missing configuration,
	// such as an absent session credential.
	Configuration
	// Runtime errors occur during command execution (HTTP failures,
	// external tool failures).
	Runtime
)

// String returns a human-readable name for the error category.
func (c Category) String() string {
	switch c {
	case Usage:
		return "Usage Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Usage, Configuration, Runtime).
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for usage errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error that includes correct command syntax.
func NewUsageError(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Usage,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}
