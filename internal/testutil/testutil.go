// Package testutil provides common test helpers for the profsw project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: %v", err)
	}
	return path
}

// EmailConfig is a minimal valid config with an "email" context holding
// "work" and "private" profiles. Callback commands are left empty (no-op).
const EmailConfig = `version = 1
default_context = "email"

[contexts.email.profiles.work]
[contexts.email.profiles.private]
`

// TempEmailConfig writes EmailConfig to a temp file and returns its path.
func TempEmailConfig(t *testing.T) string {
	t.Helper()
	return TempConfigFile(t, EmailConfig)
}
