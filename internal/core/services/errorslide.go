package services

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

//go:embed assets/error.tex
var errorSlideSource string

// ErrorSlideKey is the cache key of the error slide in the cache root.
const ErrorSlideKey domain.Fingerprint = "error"

// ErrorSlide renders a fixed placeholder shown when a build fails.
// It is compiled on first use and reused afterwards.
type ErrorSlide struct {
	engine *BuildEngine
	cache  driven.ArtifactCache
	linker driven.OutputLinker
}

// NewErrorSlide creates an error slide stored in cache, usually the cache
// root shared by all inputs.
func NewErrorSlide(engine *BuildEngine, cache driven.ArtifactCache, linker driven.OutputLinker) *ErrorSlide {
	return &ErrorSlide{engine: engine, cache: cache, linker: linker}
}

// Source returns the embedded slide source.
func (s *ErrorSlide) Source() string {
	return errorSlideSource
}

// Show links the error slide to output, rendering it first if needed.
func (s *ErrorSlide) Show(ctx context.Context, output string) error {
	if s.cache == nil {
		return fmt.Errorf("%w: no error slide cache", domain.ErrIO)
	}
	if !s.cache.Has(ErrorSlideKey) {
		logger.Debug("Rendering error slide in %s", s.cache.Dir())
		unit := domain.CompileUnit{FrameIndex: -1, Text: errorSlideSource, Fingerprint: ErrorSlideKey}
		if _, err := s.engine.render(ctx, s.cache, s.cache.Dir(), unit); err != nil {
			return err
		}
	}
	return s.linker.Link(s.cache.Path(ErrorSlideKey), output)
}
