package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintOf_Deterministic(t *testing.T) {
	a := FingerprintOf("hello")
	b := FingerprintOf("hello")

	assert.Equal(t, a, b)
	assert.Len(t, a.String(), 32)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", a.String())
}

func TestFingerprintOf_DiffersOnContent(t *testing.T) {
	assert.NotEqual(t, FingerprintOf("a"), FingerprintOf("b"))
	assert.NotEqual(t, FingerprintOf(""), FingerprintOf(" "))
}

func TestNewFormatID(t *testing.T) {
	id := NewFormatID("P", false)

	assert.Equal(t, FingerprintOf("P").String()+"_false", id.String())
	assert.Equal(t, id.String()+".fmt", id.FileName())
	assert.NotEqual(t, id, NewFormatID("P", true))
}

func TestNewCompileUnit_Layout(t *testing.T) {
	format := FormatID("abc_false")
	frame := Frame{Index: 3, Text: "\\begin{frame}x\\end{frame}"}

	unit := NewCompileUnit(format, "PRE", frame, false)

	assert.Equal(t, "%&abc_false\nPRE\n\\begin{document}\n\\begin{frame}x\\end{frame}\n\\end{document}\n", unit.Text)
	assert.Equal(t, 3, unit.FrameIndex)
	assert.Equal(t, FingerprintOf(unit.Text), unit.Fingerprint)
}

func TestNewCompileUnit_FrameNumbering(t *testing.T) {
	frame := Frame{Index: 2, Text: "F"}

	unit := NewCompileUnit("fmt", "P", frame, true)

	assert.Contains(t, unit.Text, "\\setcounter{framenumber}{2}\nF")
}

func TestNewCompileUnit_PureFunction(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Frame
		numbering bool
		same      bool
	}{
		{"same inputs", Frame{0, "F"}, Frame{0, "F"}, false, true},
		{"index ignored without numbering", Frame{0, "F"}, Frame{5, "F"}, false, true},
		{"index matters with numbering", Frame{0, "F"}, Frame{5, "F"}, true, false},
		{"text matters", Frame{0, "F"}, Frame{0, "G"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ua := NewCompileUnit("fmt", "P", tt.a, tt.numbering)
			ub := NewCompileUnit("fmt", "P", tt.b, tt.numbering)
			assert.Equal(t, tt.same, ua.Fingerprint == ub.Fingerprint)
		})
	}
}

func TestNewDocumentUnit(t *testing.T) {
	unit := NewDocumentUnit("fmt", "SOURCE")

	require.True(t, strings.HasPrefix(unit.Text, "%&fmt\n"))
	assert.Equal(t, -1, unit.FrameIndex)
	assert.Equal(t, FingerprintOf("%&fmt\nSOURCE"), unit.Fingerprint)
}

func TestTeXSafePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/me/.cache/faster-beamer/-2Fhome-2Fme/abc.tex", true},
		{"C:/Users/me/cache/v1.2_final.pdf", true},
		{"/cache/%2Fhome/abc.tex", false},
		{"/cache/my talks/abc.tex", false},
		{"/cache/#1/abc.tex", false},
		{`C:\Users\me`, false},
		{"/cache/{x}/abc.tex", false},
		{"/cache/a&b/~c/$d^e", false},
		{"/cache/tab\there", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, TeXSafePath(tt.path))
		})
	}
}
