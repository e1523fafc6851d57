package services

import (
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// FrameService decomposes source text into a preamble and frames.
type FrameService struct {
	structural driven.FrameExtractor
	textual    driven.FrameExtractor
}

// NewFrameService creates a frame service. structural may be nil, in which
// case only textual extraction runs.
func NewFrameService(structural, textual driven.FrameExtractor) *FrameService {
	return &FrameService{structural: structural, textual: textual}
}

// Decompose builds the Document for one run.
func (s *FrameService) Decompose(path, source string, useStructural bool) *domain.Document {
	return &domain.Document{
		Path:     path,
		Source:   source,
		Preamble: domain.ExtractPreamble(source),
		Frames:   s.Extract(source, useStructural),
	}
}

// Extract tries the structural extractor first when requested and falls
// back to textual extraction when it fails or finds nothing.
func (s *FrameService) Extract(source string, useStructural bool) []domain.Frame {
	if useStructural && s.structural != nil {
		frames, err := s.structural.Extract(source)
		switch {
		case err != nil:
			logger.Warn("%s extraction failed, falling back: %v", s.structural.Name(), err)
		case len(frames) > 0:
			logger.Info("Found %d frames (%s)", len(frames), s.structural.Name())
			return frames
		default:
			logger.Debug("%s extraction found no frames, falling back", s.structural.Name())
		}
	}

	if s.textual == nil {
		return nil
	}
	frames, err := s.textual.Extract(source)
	if err != nil {
		logger.Warn("%s extraction failed: %v", s.textual.Name(), err)
		return nil
	}
	logger.Info("Found %d frames (%s)", len(frames), s.textual.Name())
	return frames
}
