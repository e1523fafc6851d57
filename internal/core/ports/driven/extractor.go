package driven

import "github.com/custodia-labs/faster-beamer/internal/core/domain"

// FrameExtractor locates frame blocks in source text.
// Implementations return frames in source order with byte-exact text.
type FrameExtractor interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract returns the frames found in text.
	// An empty result with nil error means no frames were found.
	Extract(text string) ([]domain.Frame, error)
}
