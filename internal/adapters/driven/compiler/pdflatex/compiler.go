// Package pdflatex drives pdflatex-compatible typesetting binaries.
package pdflatex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure Compiler implements the interface.
var _ driven.Compiler = (*Compiler)(nil)

// formatDumper is the LaTeX package that dumps a document preamble as a format.
const formatDumper = "mylatexformat.ltx"

// draftOption is executed before the preamble when dumping a draft format.
const draftOption = `\PassOptionsToClass{draft}{beamer}\input`

// Compiler runs one typesetting binary through a CommandRunner.
type Compiler struct {
	binary string
	runner driven.CommandRunner
}

// New creates a compiler for binary. An empty binary selects "pdflatex".
func New(binary string, runner driven.CommandRunner) *Compiler {
	if binary == "" {
		binary = "pdflatex"
	}
	return &Compiler{binary: binary, runner: runner}
}

// Binary returns the compiler executable name.
func (c *Compiler) Binary() string {
	return c.binary
}

// Compile renders req.Source into req.OutputDir/<JobName>.pdf.
func (c *Compiler) Compile(ctx context.Context, req driven.CompileRequest) (string, error) {
	if req.Source == "" || req.OutputDir == "" || req.JobName == "" {
		return "", errors.New("compile request needs source, output dir and job name")
	}
	// TeX reads the source argument as its first input line.
	source := filepath.ToSlash(req.Source)
	if !domain.TeXSafePath(source) {
		return "", &driven.CompileFailure{Log: fmt.Sprintf("source path %q contains characters TeX cannot read", req.Source)}
	}

	cmd := driven.Command{
		Name: c.binary,
		Dir:  req.WorkDir,
		Args: []string{
			"-shell-escape",
			"-interaction=nonstopmode",
			"-output-directory=" + req.OutputDir,
			"-jobname=" + req.JobName,
			source,
		},
	}
	if err := c.run(ctx, cmd); err != nil {
		return "", err
	}

	rendered := filepath.Join(req.OutputDir, req.JobName+".pdf")
	if _, err := os.Stat(rendered); err != nil {
		return "", &driven.CompileFailure{Log: fmt.Sprintf("%s produced no output: %v", c.binary, err)}
	}
	return rendered, nil
}

// DumpFormat precompiles the preamble of req.Input into
// req.WorkDir/<Format>.fmt.
func (c *Compiler) DumpFormat(ctx context.Context, req driven.FormatRequest) error {
	if req.Input == "" || req.Format == "" {
		return errors.New("format request needs input and format name")
	}

	args := []string{
		"-shell-escape",
		"-ini",
		"-jobname=" + req.Format.String(),
		"&" + filepath.Base(c.binary),
	}
	if req.Draft {
		args = append(args, draftOption)
	}
	args = append(args, formatDumper, req.Input)

	if err := c.run(ctx, driven.Command{Name: c.binary, Dir: req.WorkDir, Args: args}); err != nil {
		return err
	}

	dumped := filepath.Join(req.WorkDir, req.Format.FileName())
	if _, err := os.Stat(dumped); err != nil {
		return &driven.CompileFailure{Log: fmt.Sprintf("%s did not write %s: %v", c.binary, dumped, err)}
	}
	return nil
}

func (c *Compiler) run(ctx context.Context, cmd driven.Command) error {
	if c.runner == nil {
		return errors.New("command runner not configured")
	}
	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("run %s: %w", c.binary, err)
	}
	if !res.Success() {
		return &driven.CompileFailure{
			ExitCode: res.ExitCode,
			Log:      string(res.Stdout) + string(res.Stderr),
		}
	}
	return nil
}
