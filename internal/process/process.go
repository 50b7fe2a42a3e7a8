// Package process runs helper commands so that canceling their context
// terminates the whole process tree, not only the direct child.
package process

import (
	"os/exec"
	"time"
)

// WaitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the tree was killed.
const WaitDelay = 2 * time.Second

// KillTreeOnCancel configures cmd, built with exec.CommandContext, to kill
// its process group when the context is done. Must be called before Start.
func KillTreeOnCancel(cmd *exec.Cmd) {
	setGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if err := KillProcessGroup(cmd.Process.Pid); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = WaitDelay
}
