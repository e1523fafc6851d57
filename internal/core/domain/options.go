package domain

import (
	"fmt"
	"strings"
)

// OutputMode selects how the final artifact is assembled.
type OutputMode string

// Available output modes.
const (
	// ModePreview links the first changed frame's artifact to the output.
	ModePreview OutputMode = "preview"

	// ModeConcat concatenates every frame's artifact with an external tool.
	ModeConcat OutputMode = "pdfunite"

	// ModeStitch reinserts compiled frames into the original document.
	ModeStitch OutputMode = "unite"
)

// IsValid returns true if the mode is recognised.
func (m OutputMode) IsValid() bool {
	switch m {
	case ModePreview, ModeConcat, ModeStitch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m OutputMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m OutputMode) Description() string {
	switch m {
	case ModePreview:
		return "Preview (first changed frame only)"
	case ModeConcat:
		return "Concatenate (all frames, external tool)"
	case ModeStitch:
		return "Stitch (frames reinserted into the document)"
	default:
		return "Unknown"
	}
}

// ParseOutputMode converts user input into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	m := OutputMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return ModePreview, nil
	}
	if !m.IsValid() {
		return "", fmt.Errorf("%w: unknown output mode %q", ErrInvalidInput, s)
	}
	return m, nil
}

// Defaults used when neither configuration nor flags set a value.
const (
	DefaultOutput     = "output.pdf"
	DefaultCompiler   = "pdflatex"
	DefaultConcatTool = "pdfunite"
)

// BuildRequest is everything one pipeline invocation needs.
type BuildRequest struct {
	// Input is the source document path.
	Input string

	// Output is the user-visible output path.
	Output string

	// Mode selects the assembly strategy.
	Mode OutputMode

	// Structural enables the grammar-aware extractor before the textual one.
	Structural bool

	// FrameNumbers corrects slide numbers inside each compile unit.
	FrameNumbers bool

	// Draft selects the draft variant of the precompiled preamble.
	Draft bool
}

// Validate checks the request is complete.
func (r BuildRequest) Validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Output) == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidInput)
	}
	if !r.Mode.IsValid() {
		return fmt.Errorf("%w: unknown output mode %q", ErrInvalidInput, r.Mode)
	}
	return nil
}
