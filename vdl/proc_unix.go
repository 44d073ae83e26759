//go:build unix

package vdl

import (
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup starts the command as the leader of a new process
// group and arranges for the whole group to be killed when the command
// context is cancelled, so descendants cannot outlive the timeout.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if err == syscall.ESRCH {
			return os.ErrProcessDone
		}
		return err
	}
}
