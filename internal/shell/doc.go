// Package shell generates eval-able snippets that export the active
// context/profile into the calling shell's environment. The environment is
// the only cross-process trace of a switch; profsw itself persists nothing.
package shell
