package textual

import (
	"regexp"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.FrameExtractor = (*Extractor)(nil)

// Name is the strategy identifier.
const Name = "textual"

// framePattern matches a frame from a begin marker at line start to the
// nearest end marker at line start. Non-greedy so adjacent frames stay apart.
var framePattern = regexp.MustCompile(`(?ms)^\\begin\{frame\}.*?^\\end\{frame\}`)

// Extractor finds frames with a regular expression over the raw text.
type Extractor struct{}

// New creates a textual extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return Name
}

// Extract returns every match of the frame pattern in order.
func (e *Extractor) Extract(text string) ([]domain.Frame, error) {
	texts := framePattern.FindAllString(text, -1)
	logger.Debug("Found %d frames with the textual scan", len(texts))
	return domain.NewFrames(texts), nil
}
