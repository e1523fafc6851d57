package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// diagnosticLines is how much compiler output a failed unit logs.
const diagnosticLines = 20

// BuildEngine compiles stale units in parallel.
type BuildEngine struct {
	compiler driven.Compiler
	jobs     int

	mu       sync.Mutex
	progress domain.Progress
}

// NewBuildEngine creates an engine running at most jobs compilations at
// once. jobs <= 0 means one per CPU.
func NewBuildEngine(compiler driven.Compiler, jobs int) *BuildEngine {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	return &BuildEngine{compiler: compiler, jobs: jobs}
}

// Jobs returns the concurrency limit.
func (e *BuildEngine) Jobs() int {
	return e.jobs
}

// Units creates one compile unit per frame, in frame order.
func Units(format domain.FormatID, preamble string, frames []domain.Frame, numbering bool) []domain.CompileUnit {
	units := make([]domain.CompileUnit, len(frames))
	for i, f := range frames {
		units[i] = domain.NewCompileUnit(format, preamble, f, numbering)
	}
	return units
}

// Build makes sure every unit has an artifact in cache. workDir is where
// the compiler runs so the format and relative includes resolve.
// A failed unit never aborts its siblings; the returned results are in
// unit order and every worker has finished when Build returns.
func (e *BuildEngine) Build(ctx context.Context, cache driven.ArtifactCache, workDir string, units []domain.CompileUnit) []domain.BuildResult {
	results := make([]domain.BuildResult, len(units))

	// Identical units share one compilation.
	owners := make(map[domain.Fingerprint]int)
	var stale []int
	for i, u := range units {
		results[i] = domain.BuildResult{
			FrameIndex:   u.FrameIndex,
			Fingerprint:  u.Fingerprint,
			ArtifactPath: cache.Path(u.Fingerprint),
		}
		if cache.Has(u.Fingerprint) {
			results[i].Status = domain.BuildCacheHit
			continue
		}
		if _, ok := owners[u.Fingerprint]; ok {
			continue
		}
		owners[u.Fingerprint] = i
		stale = append(stale, i)
	}

	e.start(len(stale))
	defer e.finish()

	var g errgroup.Group
	g.SetLimit(e.jobs)
	for _, i := range stale {
		g.Go(func() error {
			err := e.Compile(ctx, cache, workDir, units[i])
			if err != nil {
				results[i].Status = domain.BuildFailed
				results[i].Err = err
			} else {
				results[i].Status = domain.BuildCompiled
			}
			e.step(err != nil)
			return nil
		})
	}
	_ = g.Wait()

	for i, u := range units {
		if results[i].Status != "" {
			continue
		}
		owner := results[owners[u.Fingerprint]]
		results[i].Status = owner.Status
		results[i].Err = owner.Err
	}
	return results
}

// Compile renders one unit and stores the artifact under its fingerprint.
// Failures are logged with the tail of the compiler diagnostics.
func (e *BuildEngine) Compile(ctx context.Context, cache driven.ArtifactCache, workDir string, unit domain.CompileUnit) error {
	source, err := e.render(ctx, cache, workDir, unit)
	if err != nil {
		logFailure(unit, source, err)
		return err
	}
	logger.Info("Compiled %s", source)
	return nil
}

func (e *BuildEngine) render(ctx context.Context, cache driven.ArtifactCache, workDir string, unit domain.CompileUnit) (string, error) {
	source, err := cache.PutSource(unit.Fingerprint, unit.Text)
	if err != nil {
		return "", err
	}

	outDir, err := os.MkdirTemp("", "faster-beamer-")
	if err != nil {
		return source, fmt.Errorf("%w: create output directory: %w", domain.ErrIO, err)
	}
	defer os.RemoveAll(outDir)

	rendered, err := e.compiler.Compile(ctx, driven.CompileRequest{
		Source:    source,
		WorkDir:   workDir,
		OutputDir: outDir,
		JobName:   unit.Fingerprint.String(),
	})
	if err != nil {
		return source, fmt.Errorf("%w: %s: %w", domain.ErrCompile, unitName(unit), err)
	}

	data, err := os.ReadFile(rendered)
	if err != nil {
		return source, fmt.Errorf("%w: read rendered file: %w", domain.ErrIO, err)
	}
	if err := cache.Put(unit.Fingerprint, data); err != nil {
		return source, err
	}
	return source, nil
}

// Progress returns the current counter.
func (e *BuildEngine) Progress() domain.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress
}

func (e *BuildEngine) start(total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress = domain.Progress{Running: true, Total: total}
}

func (e *BuildEngine) step(failed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress.Done++
	if failed {
		e.progress.Failed++
	}
}

func (e *BuildEngine) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress.Running = false
}

func unitName(unit domain.CompileUnit) string {
	if unit.FrameIndex < 0 {
		return "document"
	}
	return fmt.Sprintf("frame %d", unit.FrameIndex)
}

func logFailure(unit domain.CompileUnit, source string, err error) {
	var failure *driven.CompileFailure
	if errors.As(err, &failure) && failure.Log != "" {
		logger.Error("Failed to compile %s (%s):\n%s", unitName(unit), source, logger.Tail(failure.Log, diagnosticLines))
		return
	}
	logger.Error("Failed to compile %s (%s): %v", unitName(unit), source, err)
}
