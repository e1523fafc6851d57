package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPreamble(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"with body", "\\documentclass{beamer}\n\\usepackage{x}\n\\begin{document}\nbody", "\\documentclass{beamer}\n\\usepackage{x}\n"},
		{"marker at start", "\\begin{document}", ""},
		{"first marker wins", "A\\begin{document}B\\begin{document}", "A"},
		{"no body", "just text", DefaultPreamble},
		{"empty", "", DefaultPreamble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPreamble(tt.source))
		})
	}
}

func TestNewFrames(t *testing.T) {
	frames := NewFrames([]string{"a", "b"})

	assert.Equal(t, []Frame{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}}, frames)
	assert.Empty(t, NewFrames(nil))
}

func TestDocument_FrameTexts(t *testing.T) {
	doc := Document{Frames: NewFrames([]string{"x", "y", "z"})}

	assert.Equal(t, []string{"x", "y", "z"}, doc.FrameTexts())
}
