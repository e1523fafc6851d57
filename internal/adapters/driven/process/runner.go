// Package process runs external binaries for the driven adapters.
package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure ExecRunner implements the interface.
var _ driven.CommandRunner = (*ExecRunner)(nil)

// ExecRunner executes commands on the local host without a shell.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, cmd driven.Command) (driven.CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	logger.Debug("exec %s %v (dir %q)", cmd.Name, cmd.Args, cmd.Dir)

	err := c.Run()
	result := driven.CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		result.ExitCode = 127
	}
	return result, err
}
