//go:build !unix

package vdl

import "os/exec"

// setProcessGroup is a no-op where process groups are unavailable.
// exec.CommandContext still kills the direct child on timeout.
func setProcessGroup(cmd *exec.Cmd) {}
