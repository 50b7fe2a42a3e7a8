//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// setGroup is a no-op: taskkill /T walks the process tree instead.
func setGroup(*exec.Cmd) {}

// KillProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) error {
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
