package domain

import "strings"

// Markup markers the builder understands. Nothing else about the
// typesetting language is interpreted.
const (
	// BeginDocument opens the document body.
	BeginDocument = `\begin{document}`

	// EndDocument closes the document body.
	EndDocument = `\end{document}`

	// FrameEnvironment is the environment name that delimits one slide.
	FrameEnvironment = "frame"
)

// DefaultPreamble is substituted when the source has no document body marker.
const DefaultPreamble = "\\documentclass{beamer}\n"

// Frame is one slide's markup. Text includes its own begin/end delimiters
// and is a byte-exact slice of the source it was extracted from.
type Frame struct {
	// Index is the 0-based position of the frame in the source.
	Index int

	// Text is the exact source text of the frame.
	Text string
}

// Document is the decomposition of one source text for one build.
type Document struct {
	// Path is the input file the source was read from.
	Path string

	// Source is the full text as read from disk.
	Source string

	// Preamble is the text preceding the document body.
	Preamble string

	// Frames are the slides in source order.
	Frames []Frame
}

// FrameTexts returns the text of every frame in order.
func (d *Document) FrameTexts() []string {
	texts := make([]string, len(d.Frames))
	for i, f := range d.Frames {
		texts[i] = f.Text
	}
	return texts
}

// ExtractPreamble returns the text strictly preceding the first
// document body marker, or DefaultPreamble when there is none.
func ExtractPreamble(source string) string {
	idx := strings.Index(source, BeginDocument)
	if idx < 0 {
		return DefaultPreamble
	}
	return source[:idx]
}

// NewFrames numbers the given texts in order.
func NewFrames(texts []string) []Frame {
	frames := make([]Frame, len(texts))
	for i, t := range texts {
		frames[i] = Frame{Index: i, Text: t}
	}
	return frames
}
