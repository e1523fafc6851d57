package domain

import "errors"

// Pipeline errors. Every one is terminal for the invocation that returns it.
var (
	// ErrInputFileNotExistent indicates the input document does not exist.
	ErrInputFileNotExistent = errors.New("input file does not exist")

	// ErrIO indicates cache directory or output file manipulation failed.
	ErrIO = errors.New("io error")

	// ErrCompile indicates a format, unit or stitched document did not compile.
	ErrCompile = errors.New("compile error")

	// ErrPdfUnite indicates the concatenation tool failed.
	ErrPdfUnite = errors.New("pdfunite error")
)

// Supporting errors.
var (
	// ErrParse indicates the structural parser rejected the source.
	ErrParse = errors.New("parse failure")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// Process exit codes for the pipeline error taxonomy.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInputMissing = 2
	ExitIO           = 3
	ExitCompile      = 4
	ExitPdfUnite     = 5
)

// ExitCode maps an error to the process exit code reported by the CLI.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputFileNotExistent):
		return ExitInputMissing
	case errors.Is(err, ErrPdfUnite):
		return ExitPdfUnite
	case errors.Is(err, ErrCompile):
		return ExitCompile
	case errors.Is(err, ErrIO):
		return ExitIO
	default:
		return ExitFailure
	}
}
