// Package testutil provides test utilities and helpers for aocprep tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub into dir and returns its path.
// Used to stand in for external commands (generator, editor, the fetch
// subprocess) so tests never touch the network or real tools.
func WriteStub(t *testing.T, dir, name, script string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
	return path
}
