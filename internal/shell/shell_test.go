package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hbjs97/profsw/internal/shell"
)

func TestActivate_PosixShell(t *testing.T) {
	output := shell.Activate("email", "work", "zsh")
	assert.Contains(t, output, `export PROFSW_CONTEXT="email"`)
	assert.Contains(t, output, `export PROFSW_PROFILE="work"`)
}

func TestActivate_Bash(t *testing.T) {
	output := shell.Activate("email", "work", "bash")
	assert.Contains(t, output, `export PROFSW_CONTEXT="email"`)
	assert.Contains(t, output, `export PROFSW_PROFILE="work"`)
}

func TestActivate_Fish(t *testing.T) {
	output := shell.Activate("email", "work", "fish")
	assert.Contains(t, output, `set -gx PROFSW_CONTEXT "email"`)
	assert.Contains(t, output, `set -gx PROFSW_PROFILE "work"`)
}

func TestDeactivate_PosixShell(t *testing.T) {
	output := shell.Deactivate("zsh")
	assert.Contains(t, output, "unset PROFSW_CONTEXT")
	assert.Contains(t, output, "unset PROFSW_PROFILE")
}

func TestDeactivate_Fish(t *testing.T) {
	output := shell.Deactivate("fish")
	assert.Contains(t, output, "set -e PROFSW_CONTEXT")
	assert.Contains(t, output, "set -e PROFSW_PROFILE")
}
