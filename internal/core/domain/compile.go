package domain

import (
	"crypto/md5" //nolint:gosec // content addressing, not security
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Fingerprint is a content hash rendered as lowercase hex.
// It doubles as the on-disk filename stem for cached files.
type Fingerprint string

// String returns the hex digest.
func (f Fingerprint) String() string {
	return string(f)
}

// FingerprintOf hashes text. It is pure and stable across processes.
func FingerprintOf(text string) Fingerprint {
	sum := md5.Sum([]byte(text)) //nolint:gosec // content addressing, not security
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// FormatID names a precompiled preamble: fingerprint(preamble) + "_" + draft.
type FormatID string

// NewFormatID derives the format name for a preamble and draft flag.
func NewFormatID(preamble string, draft bool) FormatID {
	return FormatID(FingerprintOf(preamble).String() + "_" + strconv.FormatBool(draft))
}

// String returns the format name.
func (f FormatID) String() string {
	return string(f)
}

// FileName returns the name of the format file the compiler dumps.
func (f FormatID) FileName() string {
	return string(f) + ".fmt"
}

// CompileUnit is the standalone document built for a single frame.
// Text is a pure function of its inputs, which is what makes the
// fingerprint a valid cache key.
type CompileUnit struct {
	// FrameIndex is the frame this unit renders, or -1 for synthetic units.
	FrameIndex int

	// Text is the full standalone source.
	Text string

	// Fingerprint is FingerprintOf(Text).
	Fingerprint Fingerprint
}

// NewCompileUnit assembles the standalone document for one frame.
// When numbering is true the frame counter is set so the rendered slide
// carries the same number it would in the full document.
func NewCompileUnit(format FormatID, preamble string, frame Frame, numbering bool) CompileUnit {
	var b strings.Builder
	b.Grow(len(format) + len(preamble) + len(frame.Text) + 96)
	b.WriteString(FormatHeader(format))
	b.WriteString(preamble)
	b.WriteString("\n" + BeginDocument + "\n")
	if numbering {
		fmt.Fprintf(&b, "\\setcounter{framenumber}{%d}\n", frame.Index)
	}
	b.WriteString(frame.Text)
	b.WriteString("\n" + EndDocument + "\n")

	text := b.String()
	return CompileUnit{
		FrameIndex:  frame.Index,
		Text:        text,
		Fingerprint: FingerprintOf(text),
	}
}

// NewDocumentUnit wraps a complete document (preamble and body) so it
// compiles against a precompiled format.
func NewDocumentUnit(format FormatID, source string) CompileUnit {
	text := FormatHeader(format) + source
	return CompileUnit{
		FrameIndex:  -1,
		Text:        text,
		Fingerprint: FingerprintOf(text),
	}
}

// FormatHeader is the first line that makes the compiler load a format.
func FormatHeader(format FormatID) string {
	return "%&" + string(format) + "\n"
}

// texSpecials are the bytes TeX gives a meaning to inside a file name read
// from the command line or from an \includegraphics argument.
const texSpecials = "%#$&~^{}\\ "

// TeXSafePath reports whether path, with forward slashes, can be handed to
// TeX verbatim.
func TeXSafePath(path string) bool {
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c < 0x20 || c == 0x7f || strings.IndexByte(texSpecials, c) >= 0 {
			return false
		}
	}
	return true
}
