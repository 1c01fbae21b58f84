//go:build unix

package buildsys

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// terminate sends SIGTERM so the generator can clean up before exiting.
func terminate(cmd *exec.Cmd) func() error {
	return func() error {
		err := unix.Kill(cmd.Process.Pid, unix.SIGTERM)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
