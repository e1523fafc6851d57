package driven

import (
	"context"
	"fmt"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

// CompileRequest describes one render of a standalone source file.
type CompileRequest struct {
	// Source is the path of the file to compile.
	Source string

	// WorkDir is where the compiler runs; formats and relative includes
	// are resolved from here.
	WorkDir string

	// OutputDir receives the rendered file.
	OutputDir string

	// JobName is the stem of the rendered file.
	JobName string
}

// FormatRequest describes one format dump.
type FormatRequest struct {
	// Format names the file to produce.
	Format domain.FormatID

	// Input is the document whose preamble is dumped.
	Input string

	// WorkDir is where the format file is written.
	WorkDir string

	// Draft selects the draft variant.
	Draft bool
}

// Compiler is the external typesetting compiler.
type Compiler interface {
	// Compile renders req.Source and returns the path of the rendered file.
	Compile(ctx context.Context, req CompileRequest) (string, error)

	// DumpFormat precompiles the preamble of req.Input into
	// WorkDir/<Format>.fmt.
	DumpFormat(ctx context.Context, req FormatRequest) error
}

// CompileFailure carries the diagnostics of a failed compiler run.
type CompileFailure struct {
	// ExitCode is the compiler's exit status.
	ExitCode int

	// Log is the compiler's diagnostic output.
	Log string
}

// Error implements the error interface.
func (f *CompileFailure) Error() string {
	return fmt.Sprintf("compiler exited with status %d", f.ExitCode)
}

// Concatenator joins rendered pages into one file.
type Concatenator interface {
	// Concat writes the pages of paths, in order, to output.
	Concat(ctx context.Context, paths []string, output string) error
}
