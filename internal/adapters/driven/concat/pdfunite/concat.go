// Package pdfunite concatenates rendered pages with the poppler pdfunite tool.
package pdfunite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure Concatenator implements the interface.
var _ driven.Concatenator = (*Concatenator)(nil)

// Concatenator invokes pdfunite through a CommandRunner.
type Concatenator struct {
	binary string
	runner driven.CommandRunner
}

// New creates a concatenator. An empty binary selects "pdfunite".
func New(binary string, runner driven.CommandRunner) *Concatenator {
	if binary == "" {
		binary = "pdfunite"
	}
	return &Concatenator{binary: binary, runner: runner}
}

// Concat runs `pdfunite <paths...> <output>`.
func (c *Concatenator) Concat(ctx context.Context, paths []string, output string) error {
	if len(paths) == 0 {
		return errors.New("nothing to concatenate")
	}
	if c.runner == nil {
		return errors.New("command runner not configured")
	}

	args := make([]string, 0, len(paths)+1)
	args = append(args, paths...)
	args = append(args, output)

	res, err := c.runner.Run(ctx, driven.Command{Name: c.binary, Args: args})
	if err != nil {
		return fmt.Errorf("run %s: %w", c.binary, err)
	}
	if !res.Success() {
		return fmt.Errorf("%s exited with status %d: %s",
			c.binary, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
	return nil
}
