// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvFileName is the file name used by WriteEnvFile.
const EnvFileName = "test.env"

// WriteEnvFile writes content to a fresh env file inside t.TempDir() and
// returns its path.
func WriteEnvFile(t testing.TB, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), EnvFileName, content)
}

// EnvLines joins lines into env file content with a trailing newline.
func EnvLines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Unsetenv removes key from the process environment until the test ends.
// Like t.Setenv, it must not be used in parallel tests.
func Unsetenv(t *testing.T, key string) {
	t.Helper()
	// t.Setenv registers the restore and rejects parallel tests.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}
