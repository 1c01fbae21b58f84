// Package buildsys runs external build-system tools as child processes.
package buildsys

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner runs one external build tool invocation to completion.
type Runner interface {
	// Run executes argv[0] with argv[1:] and the given KEY=VALUE environment,
	// blocking until the process exits. A nil error means exit status zero.
	Run(ctx context.Context, argv []string, environ []string) error
}

// LaunchError reports that the tool could not be started at all.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports that the tool ran and did not exit with status zero.
// Code is -1 when the process was terminated by a signal.
type ExitError struct {
	Args []string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Code >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Args[0], e.Code)
	}
	return fmt.Sprintf("%s terminated: %v", e.Args[0], e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExecRunner runs tools as child processes sharing this process's stdio.
// It applies no timeout and never retries. When ctx is done the child is
// asked to terminate and Run still waits for it to exit.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, argv []string, environ []string) error {
	if len(argv) == 0 {
		return &LaunchError{Err: errors.New("empty command line")}
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = environ
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	cmd.Cancel = terminate(cmd)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if cmd.Process == nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}
	code := -1
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = fmt.Errorf("%w (%w)", ctxErr, err)
	}
	return &ExitError{Args: append([]string(nil), argv...), Code: code, Err: err}
}
