package builder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrCommandFailed is returned when the packaging command exits nonzero
var ErrCommandFailed = errors.New("packaging command failed")

// CommandRunner runs the external packaging command in a working directory.
// This interface allows for mocking the command in tests.
type CommandRunner interface {
	// Run executes the packaging command with dir as its working directory
	Run(dir string) error
}

// ExecRunner runs a real packaging command via os/exec. The command's
// stdout/stderr are passed through so build output stays visible.
type ExecRunner struct {
	Command string
	Args    []string
}

// NewExecRunner creates an ExecRunner for the given command and arguments.
func NewExecRunner(command string, args []string) *ExecRunner {
	return &ExecRunner{Command: command, Args: args}
}

// Run executes the packaging command in dir.
func (r *ExecRunner) Run(dir string) error {
	cmd := exec.Command(r.Command, r.Args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return nil
}
