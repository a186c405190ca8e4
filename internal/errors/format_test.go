package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *CLIError
		want []string
	}{
		"usage error includes usage line": {
			err: NewUsageError("day argument is required", "aocprep fetch <day> [year]"),
			want: []string{
				"Error [Usage Error]: day argument is required",
				"Usage: aocprep fetch <day> [year]",
			},
		},
		"config error includes remediation": {
			err: NewConfigError("no session cookie found",
				"Create aocprep.txt next to the binary",
				"Cookie: session=<token>"),
			want: []string{
				"Error [Configuration Error]: no session cookie found",
				"To fix this:",
				"• Create aocprep.txt next to the binary",
				"• Cookie: session=<token>",
			},
		},
		"runtime error is minimal": {
			err:  NewRuntimeError("fetch failed"),
			want: []string{"Error [Runtime Error]: fetch failed"},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := FormatErrorPlain(tt.err)
			for _, fragment := range tt.want {
				assert.Contains(t, got, fragment)
			}
		})
	}
}

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	wrapped := WrapWithMessage(assert.AnError, Runtime, "fetch failed")
	assert.Equal(t, Runtime, wrapped.Category)
	assert.True(t, strings.HasPrefix(wrapped.Message, "fetch failed: "))

	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Usage Error", Usage.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
	assert.Equal(t, "Error", Category(99).String())
}
