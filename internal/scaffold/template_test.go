package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	content := string(tmpl)
	assert.Contains(t, content, "pub fn input()")
	assert.Contains(t, content, "pub fn part1()")
	assert.Contains(t, content, "pub fn part2()")
	assert.Contains(t, content, `"input.txt"`, "template reads the fetched input file")
	assert.Contains(t, content, `compile-command: "cargo test -- --show-output"`,
		"template keeps the editor compile-command header")
}
