package cli

import (
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/compiler/pdflatex"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/concat/pdfunite"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/parser/latex"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/process"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/watch/fswatch"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driving"
	"github.com/custodia-labs/faster-beamer/internal/core/services"
	"github.com/custodia-labs/faster-beamer/internal/extractors/structural"
	"github.com/custodia-labs/faster-beamer/internal/extractors/textual"
)

// app holds the driving ports the commands call.
type app struct {
	builder driving.Builder
	watcher driving.Watcher
}

// newApp is replaced in tests.
var newApp = wireApp

// wireApp connects the adapters to the services for settings.
func wireApp(settings domain.Settings) (*app, error) {
	root, err := filesystem.Root(settings.CacheDir)
	if err != nil {
		return nil, err
	}
	rootCache, err := filesystem.NewArtifactCache(root)
	if err != nil {
		return nil, err
	}

	runner := process.NewExecRunner()
	compiler := pdflatex.New(settings.Compiler, runner)
	engine := services.NewBuildEngine(compiler, settings.Jobs)
	linker := filesystem.NewLinker()

	pipeline := services.NewPipeline(services.PipelineConfig{
		Frames:     services.NewFrameService(structural.New(latex.New()), textual.New()),
		Formats:    services.NewFormatCache(compiler),
		Engine:     engine,
		Assembler:  services.NewAssembler(engine, pdfunite.New(settings.ConcatTool, runner), linker),
		ErrorSlide: services.NewErrorSlide(engine, rootCache, linker),
		Caches: func(input string) (driven.ArtifactCache, error) {
			return filesystem.ForInput(root, input)
		},
	})

	return &app{
		builder: pipeline,
		watcher: services.NewWatchService(pipeline, fswatch.New(settings.WatchInterval())),
	}, nil
}
