package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// FormatCache makes sure a precompiled preamble exists next to the input.
type FormatCache struct {
	compiler driven.Compiler
}

// NewFormatCache creates a format cache that dumps formats with compiler.
func NewFormatCache(compiler driven.Compiler) *FormatCache {
	return &FormatCache{compiler: compiler}
}

// FormatPath returns where the format for id lives for input.
func FormatPath(input string, id domain.FormatID) string {
	return filepath.Join(filepath.Dir(input), id.FileName())
}

// Ensure returns the format id for (preamble, draft), dumping the format
// first if its file is missing. The compiler is invoked at most once.
func (f *FormatCache) Ensure(ctx context.Context, preamble string, draft bool, input string) (domain.FormatID, error) {
	id := domain.NewFormatID(preamble, draft)
	path := FormatPath(input, id)

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		logger.Info("Precompiled preamble already exists (%s)", id)
		return id, nil
	}

	logger.Info("Precompiling preamble %s", path)
	err := f.compiler.DumpFormat(ctx, driven.FormatRequest{
		Format:  id,
		Input:   filepath.Base(input),
		WorkDir: filepath.Dir(input),
		Draft:   draft,
	})
	if err != nil {
		var failure *driven.CompileFailure
		if errors.As(err, &failure) {
			logger.Error("Failed to precompile preamble:\n%s", logger.Tail(failure.Log, 20))
		}
		return "", fmt.Errorf("%w: precompile preamble: %w", domain.ErrCompile, err)
	}
	return id, nil
}
