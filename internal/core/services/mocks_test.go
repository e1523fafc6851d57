package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/parser/latex"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/extractors/structural"
	"github.com/custodia-labs/faster-beamer/internal/extractors/textual"
)

// --- Mock implementations for pipeline testing ---

// mockCompiler implements driven.Compiler. It "renders" a source by
// prefixing its text, so artifacts stay traceable to their units.
type mockCompiler struct {
	mu       sync.Mutex
	sources  []string
	formats  []driven.FormatRequest
	compiles atomic.Int32
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	failWhen func(text string) bool
	dumpErr  error
}

func newMockCompiler() *mockCompiler {
	return &mockCompiler{}
}

func (m *mockCompiler) Compile(_ context.Context, req driven.CompileRequest) (string, error) {
	m.compiles.Add(1)
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	text := req.JobName
	if data, err := os.ReadFile(req.Source); err == nil {
		text = string(data)
	}
	m.mu.Lock()
	m.sources = append(m.sources, text)
	m.mu.Unlock()

	if m.failWhen != nil && m.failWhen(text) {
		return "", &driven.CompileFailure{ExitCode: 1, Log: "! Undefined control sequence.\nl.3 \\broken"}
	}

	out := filepath.Join(req.OutputDir, req.JobName+".pdf")
	if err := os.WriteFile(out, []byte("PDF:"+text), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

func (m *mockCompiler) DumpFormat(_ context.Context, req driven.FormatRequest) error {
	m.mu.Lock()
	m.formats = append(m.formats, req)
	m.mu.Unlock()
	if m.dumpErr != nil {
		return m.dumpErr
	}
	return os.WriteFile(filepath.Join(req.WorkDir, req.Format.FileName()), []byte("fmt"), 0o644)
}

func (m *mockCompiler) Sources() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sources...)
}

func (m *mockCompiler) Formats() []driven.FormatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driven.FormatRequest(nil), m.formats...)
}

// mockConcatenator implements driven.Concatenator by joining file contents.
type mockConcatenator struct {
	calls atomic.Int32
	err   error
}

func (m *mockConcatenator) Concat(_ context.Context, paths []string, output string) error {
	m.calls.Add(1)
	if m.err != nil {
		return m.err
	}
	if len(paths) == 0 {
		return errors.New("no inputs")
	}
	var b strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		b.Write(data)
		b.WriteString("|")
	}
	return os.WriteFile(output, []byte(b.String()), 0o644)
}

// --- Fixture ---

const (
	frameOne = "\\begin{frame}{One}\nfirst\n\\end{frame}"
	frameTwo = "\\begin{frame}{Two}\nsecond\n\\end{frame}"
	badFrame = "\\begin{frame}{Bad}\n\\broken\n\\end{frame}"
	preamble = "\\documentclass{beamer}\n\\usepackage{graphicx}\n"
)

func deck(frames ...string) string {
	return preamble + "\\begin{document}\n" + strings.Join(frames, "\n\n") + "\n\\end{document}\n"
}

func failOnBroken(text string) bool {
	return strings.Contains(text, "\\broken")
}

type fixture struct {
	dir      string
	root     string
	input    string
	output   string
	compiler *mockCompiler
	concat   *mockConcatenator
	pipeline *Pipeline
}

func newFixture(t *testing.T, source string) *fixture {
	t.Helper()

	f := &fixture{
		dir:      t.TempDir(),
		root:     t.TempDir(),
		compiler: newMockCompiler(),
		concat:   &mockConcatenator{},
	}
	f.input = filepath.Join(f.dir, "talk.tex")
	f.output = filepath.Join(f.dir, "output.pdf")
	f.write(t, source)

	rootCache, err := filesystem.NewArtifactCache(f.root)
	require.NoError(t, err)

	engine := NewBuildEngine(f.compiler, 4)
	linker := filesystem.NewLinker()
	f.pipeline = NewPipeline(PipelineConfig{
		Frames:     NewFrameService(structural.New(latex.New()), textual.New()),
		Formats:    NewFormatCache(f.compiler),
		Engine:     engine,
		Assembler:  NewAssembler(engine, f.concat, linker),
		ErrorSlide: NewErrorSlide(engine, rootCache, linker),
		Caches: func(input string) (driven.ArtifactCache, error) {
			return filesystem.ForInput(f.root, input)
		},
	})
	return f
}

func (f *fixture) write(t *testing.T, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.input, []byte(source), 0o644))
}

func (f *fixture) request(mode domain.OutputMode) domain.BuildRequest {
	return domain.BuildRequest{Input: f.input, Output: f.output, Mode: mode}
}

func (f *fixture) readOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.output)
	require.NoError(t, err)
	return string(data)
}

func fsCache(t *testing.T, dir string) *filesystem.ArtifactCache {
	t.Helper()
	cache, err := filesystem.NewArtifactCache(dir)
	require.NoError(t, err)
	return cache
}
