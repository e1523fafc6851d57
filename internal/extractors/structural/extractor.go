package structural

import (
	"fmt"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.FrameExtractor = (*Extractor)(nil)

// Name is the strategy identifier.
const Name = "structural"

// Extractor finds frames as environment nodes of a syntax tree.
type Extractor struct {
	parser driven.Parser
}

// New creates a structural extractor over parser.
func New(parser driven.Parser) *Extractor {
	return &Extractor{parser: parser}
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return Name
}

// Extract parses text and returns the byte range of every frame
// environment. Syntax errors elsewhere in the tree are logged and do not
// stop extraction.
func (e *Extractor) Extract(text string) ([]domain.Frame, error) {
	if e.parser == nil {
		return nil, fmt.Errorf("%w: no parser configured", domain.ErrParse)
	}

	tree, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}

	for _, n := range driven.ErrorNodes(tree) {
		logger.Warn("Syntax error at bytes %d-%d:\n\t%s", n.StartByte(), n.EndByte(), text[n.StartByte():n.EndByte()])
	}

	var texts []string
	driven.Walk(tree.Root(), func(n driven.Node) bool {
		if n.Kind() == driven.NodeKindEnvironment && n.Name() == domain.FrameEnvironment {
			texts = append(texts, text[n.StartByte():n.EndByte()])
			return false
		}
		return true
	})

	logger.Debug("Found %d frames with the structural parser", len(texts))
	return domain.NewFrames(texts), nil
}
