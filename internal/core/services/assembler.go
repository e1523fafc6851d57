package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Assembly is everything the assembler needs from one run.
type Assembly struct {
	Mode      domain.OutputMode
	Output    string
	WorkDir   string
	Format    domain.FormatID
	Document  *domain.Document
	Results   []domain.BuildResult
	DiffIndex int
	Cache     driven.ArtifactCache
}

// Assembler turns per-frame artifacts into the user-visible output.
type Assembler struct {
	engine *BuildEngine
	concat driven.Concatenator
	linker driven.OutputLinker
}

// NewAssembler creates an assembler.
func NewAssembler(engine *BuildEngine, concat driven.Concatenator, linker driven.OutputLinker) *Assembler {
	return &Assembler{engine: engine, concat: concat, linker: linker}
}

// Assemble produces the output for a.Mode and returns the artifact the
// output now points to. With no frames nothing is produced.
func (a *Assembler) Assemble(ctx context.Context, in Assembly) (string, error) {
	if len(in.Results) == 0 {
		logger.Warn("No frames found; output left untouched")
		return "", nil
	}

	var (
		target string
		err    error
	)
	switch in.Mode {
	case domain.ModePreview, "":
		target, err = a.preview(in)
	case domain.ModeConcat:
		target, err = a.concatenate(ctx, in)
	case domain.ModeStitch:
		target, err = a.stitch(ctx, in)
	default:
		return "", fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, in.Mode)
	}
	if err != nil {
		return "", err
	}

	if err := a.linker.Link(target, in.Output); err != nil {
		return "", err
	}
	logger.Info("Output %s -> %s", in.Output, target)
	return target, nil
}

func (a *Assembler) preview(in Assembly) (string, error) {
	res := in.Results[PreviewIndex(in.DiffIndex, len(in.Results))]
	if !in.Cache.Has(res.Fingerprint) {
		return "", fmt.Errorf("%w: frame %d has no rendered slide", domain.ErrCompile, res.FrameIndex)
	}
	return in.Cache.Path(res.Fingerprint), nil
}

// concatenate joins all frame artifacts into a cache entry keyed by the
// ordered list of frame fingerprints.
func (a *Assembler) concatenate(ctx context.Context, in Assembly) (string, error) {
	if a.concat == nil {
		return "", fmt.Errorf("%w: no concatenation tool configured", domain.ErrPdfUnite)
	}
	if err := requireArtifacts(in); err != nil {
		return "", err
	}

	keys := make([]string, len(in.Results))
	paths := make([]string, len(in.Results))
	for i, res := range in.Results {
		keys[i] = res.Fingerprint.String()
		paths[i] = in.Cache.Path(res.Fingerprint)
	}
	key := domain.FingerprintOf(domain.ModeConcat.String() + "\n" + strings.Join(keys, "\n"))
	if in.Cache.Has(key) {
		logger.Debug("Concatenated output already cached (%s)", key)
		return in.Cache.Path(key), nil
	}

	dir, err := os.MkdirTemp("", "faster-beamer-unite-")
	if err != nil {
		return "", fmt.Errorf("%w: create output directory: %w", domain.ErrIO, err)
	}
	defer os.RemoveAll(dir)

	joined := filepath.Join(dir, key.String()+".pdf")
	if err := a.concat.Concat(ctx, paths, joined); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPdfUnite, err)
	}
	data, err := os.ReadFile(joined)
	if err != nil {
		return "", fmt.Errorf("%w: read concatenated file: %w", domain.ErrIO, err)
	}
	if err := in.Cache.Put(key, data); err != nil {
		return "", err
	}
	return in.Cache.Path(key), nil
}

// stitch replaces each frame in the source with a plain frame showing its
// rendered slide and compiles the result as one document.
func (a *Assembler) stitch(ctx context.Context, in Assembly) (string, error) {
	if err := requireArtifacts(in); err != nil {
		return "", err
	}

	stitched, err := StitchSource(in.Document, in.Results, in.Cache)
	if err != nil {
		return "", err
	}
	unit := domain.NewDocumentUnit(in.Format, stitched)
	if !in.Cache.Has(unit.Fingerprint) {
		if err := a.engine.Compile(ctx, in.Cache, in.WorkDir, unit); err != nil {
			return "", err
		}
	}
	return in.Cache.Path(unit.Fingerprint), nil
}

// StitchSource rewrites doc.Source, replacing the frames in order with
// wrappers around their artifacts. Text outside frames is kept verbatim.
func StitchSource(doc *domain.Document, results []domain.BuildResult, cache driven.ArtifactCache) (string, error) {
	if len(doc.Frames) != len(results) {
		return "", fmt.Errorf("%w: %d frames but %d results", domain.ErrCompile, len(doc.Frames), len(results))
	}

	var b strings.Builder
	b.Grow(len(doc.Source))
	rest := doc.Source
	for i, frame := range doc.Frames {
		at := strings.Index(rest, frame.Text)
		if at < 0 {
			return "", fmt.Errorf("%w: frame %d not found in source", domain.ErrCompile, frame.Index)
		}
		path := filepath.ToSlash(cache.Path(results[i].Fingerprint))
		if !domain.TeXSafePath(path) {
			return "", fmt.Errorf("%w: slide path %q contains characters TeX cannot read", domain.ErrCompile, path)
		}
		b.WriteString(rest[:at])
		b.WriteString(SlideWrapper(path))
		rest = rest[at+len(frame.Text):]
	}
	b.WriteString(rest)
	return b.String(), nil
}

// SlideWrapper returns a frame that shows page one of path full-page.
func SlideWrapper(path string) string {
	return `{\setbeamertemplate{background canvas}{}\setbeamertemplate{navigation symbols}{}` +
		`\begin{frame}[plain,c]\centering` +
		`\makebox[\linewidth][c]{\includegraphics[width=\paperwidth,height=\paperheight,keepaspectratio]{` +
		filepath.ToSlash(path) + `}}\end{frame}}`
}

func requireArtifacts(in Assembly) error {
	var missing []string
	for _, res := range in.Results {
		if !in.Cache.Has(res.Fingerprint) {
			missing = append(missing, fmt.Sprint(res.FrameIndex))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: frames without a rendered slide: %s", domain.ErrCompile, strings.Join(missing, ", "))
	}
	return nil
}
