package driven

import "context"

// Command describes one subprocess invocation. Arguments are passed
// verbatim to the binary; no shell is involved.
type Command struct {
	// Name is the binary to run, resolved through PATH.
	Name string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Args are the arguments after the binary name.
	Args []string
}

// CommandResult is what a finished subprocess reported.
type CommandResult struct {
	// ExitCode is the process exit status.
	ExitCode int

	// Stdout is everything written to standard output.
	Stdout []byte

	// Stderr is everything written to standard error.
	Stderr []byte
}

// Success reports whether the process exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner executes external binaries.
type CommandRunner interface {
	// Run blocks until the command exits. A non-nil error means the process
	// could not be started or waited on; a non-zero exit is reported through
	// the result and is not an error.
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}
