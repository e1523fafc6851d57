package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driving"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Builder = (*Pipeline)(nil)

// CacheFactory opens the artifact cache for an input file.
type CacheFactory func(input string) (driven.ArtifactCache, error)

// PipelineConfig wires a Pipeline.
type PipelineConfig struct {
	Frames     *FrameService
	Formats    *FormatCache
	Engine     *BuildEngine
	Assembler  *Assembler
	ErrorSlide *ErrorSlide
	Caches     CacheFactory
	History    *RunHistory
}

// Pipeline runs one incremental build per call to Build.
type Pipeline struct {
	frames     *FrameService
	formats    *FormatCache
	engine     *BuildEngine
	assembler  *Assembler
	errorSlide *ErrorSlide
	caches     CacheFactory
	history    *RunHistory
}

// NewPipeline creates a pipeline. A nil History starts a fresh one.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	history := cfg.History
	if history == nil {
		history = NewRunHistory()
	}
	return &Pipeline{
		frames:     cfg.Frames,
		formats:    cfg.Formats,
		engine:     cfg.Engine,
		assembler:  cfg.Assembler,
		errorSlide: cfg.ErrorSlide,
		caches:     cfg.Caches,
		history:    history,
	}
}

// History returns the run history shared across builds.
func (p *Pipeline) History() *RunHistory {
	return p.history
}

// Status returns the build engine's progress.
func (p *Pipeline) Status() domain.Progress {
	return p.engine.Progress()
}

// Build runs extract, format, compile, diff and assemble for req.
// On any failure after the input was found the output shows the error
// slide and the error carries one of the pipeline sentinels.
func (p *Pipeline) Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildReport, error) {
	started := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := &domain.BuildReport{
		RunID:  uuid.NewString(),
		Input:  req.Input,
		Output: req.Output,
		Mode:   req.Mode,
	}
	logger.Section("Build " + report.RunID)

	input, err := filepath.Abs(req.Input)
	if err != nil {
		return report, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	info, err := os.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		logger.Error("Input file %s does not exist", req.Input)
		return report, fmt.Errorf("%w: %s", domain.ErrInputFileNotExistent, req.Input)
	}

	var texts []string
	defer func() {
		p.history.Replace(texts)
		report.Duration = time.Since(started)
	}()

	data, err := os.ReadFile(input)
	if err != nil {
		return p.fail(ctx, report, fmt.Errorf("%w: read input: %w", domain.ErrIO, err))
	}

	doc := p.frames.Decompose(input, string(data), req.Structural)
	texts = doc.FrameTexts()
	report.FrameCount = len(doc.Frames)
	report.DiffIndex = Diff(texts, p.history.Snapshot())
	logger.Debug("First changed frame: %d", report.DiffIndex)

	cache, err := p.caches(input)
	if err != nil {
		return p.fail(ctx, report, err)
	}

	format, err := p.formats.Ensure(ctx, doc.Preamble, req.Draft, input)
	if err != nil {
		return p.fail(ctx, report, err)
	}
	report.Format = format

	workDir := filepath.Dir(input)
	units := Units(format, doc.Preamble, doc.Frames, req.FrameNumbers)
	report.Results = p.engine.Build(ctx, cache, workDir, units)

	artifact, err := p.assembler.Assemble(ctx, Assembly{
		Mode:      req.Mode,
		Output:    req.Output,
		WorkDir:   workDir,
		Format:    format,
		Document:  doc,
		Results:   report.Results,
		DiffIndex: report.DiffIndex,
		Cache:     cache,
	})
	if err != nil {
		return p.fail(ctx, report, err)
	}
	report.Artifact = artifact
	return report, nil
}

func (p *Pipeline) fail(ctx context.Context, report *domain.BuildReport, err error) (*domain.BuildReport, error) {
	if !isPipelineError(err) {
		err = fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	logger.Error("Build failed: %v", err)

	if p.errorSlide == nil {
		return report, err
	}
	if slideErr := p.errorSlide.Show(ctx, report.Output); slideErr != nil {
		logger.Debug("Error slide unavailable: %v", slideErr)
		if rmErr := p.errorSlide.linker.Remove(report.Output); rmErr != nil {
			logger.Debug("Stale output left in place: %v", rmErr)
		}
		return report, err
	}
	report.ErrorSlide = true
	report.Artifact = p.errorSlide.cache.Path(ErrorSlideKey)
	return report, err
}

func isPipelineError(err error) bool {
	return errors.Is(err, domain.ErrIO) ||
		errors.Is(err, domain.ErrCompile) ||
		errors.Is(err, domain.ErrPdfUnite) ||
		errors.Is(err, domain.ErrInputFileNotExistent)
}
