// Package cli provides the command-line interface using Cobra.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// buildFlags holds the flags shared by the build and watch commands.
var buildFlags struct {
	output       string
	compiler     string
	mode         string
	cacheDir     string
	jobs         int
	treeSitter   bool
	frameNumbers bool
	draft        bool
}

var rootCmd = &cobra.Command{
	Use:   "faster-beamer <input.tex>",
	Short: "Incremental, parallel beamer slide compiler",
	Long: `faster-beamer compiles every frame of a beamer presentation as its own
document, in parallel, and caches the result by content. Only frames whose
text changed are recompiled.

By default the output shows the first frame that changed since the previous
build (preview mode). Use --mode pdfunite to concatenate all frames, or
--mode unite to rebuild the full document from the cached slides.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runBuild,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&configPath, "config", "", "Config file (default <user config dir>/faster-beamer/config.toml)")
	flags.StringVarP(&buildFlags.output, "output", "o", domain.DefaultOutput, "Output file")
	flags.StringVar(&buildFlags.compiler, "compiler", domain.DefaultCompiler, "Compiler binary")
	flags.StringVar(&buildFlags.mode, "mode", domain.ModePreview.String(), "Output mode: preview, pdfunite or unite")
	flags.StringVar(&buildFlags.cacheDir, "cache-dir", "", "Cache root (default <user cache dir>/faster-beamer)")
	flags.IntVarP(&buildFlags.jobs, "jobs", "j", 0, "Parallel compilations (default one per CPU)")
	flags.BoolVar(&buildFlags.treeSitter, "tree-sitter", false, "Extract frames with the structural parser")
	flags.BoolVar(&buildFlags.frameNumbers, "frame-numbers", false, "Correct frame numbers in single-frame builds")
	flags.BoolVar(&buildFlags.draft, "draft", false, "Compile with the beamer draft option")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}

// openConfigStore is replaced in tests.
var openConfigStore = func(path string) (driven.ConfigStore, error) {
	if path != "" {
		return file.NewConfigStoreAt(path), nil
	}
	return file.NewConfigStore("")
}

// resolveSettings layers explicitly set flags over the config file.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	store, err := openConfigStore(configPath)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to open config: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		settings.Output = buildFlags.output
	}
	if flags.Changed("compiler") {
		settings.Compiler = buildFlags.compiler
	}
	if flags.Changed("mode") {
		mode, err := domain.ParseOutputMode(buildFlags.mode)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Mode = mode
	}
	if flags.Changed("cache-dir") {
		settings.CacheDir = buildFlags.cacheDir
	}
	if flags.Changed("jobs") {
		settings.Jobs = buildFlags.jobs
	}
	if flags.Changed("tree-sitter") {
		settings.TreeSitter = buildFlags.treeSitter
	}
	if flags.Changed("frame-numbers") {
		settings.FrameNumbers = buildFlags.frameNumbers
	}
	if flags.Changed("draft") {
		settings.Draft = buildFlags.draft
	}

	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func buildRequest(settings domain.Settings, input string) domain.BuildRequest {
	return domain.BuildRequest{
		Input:        input,
		Output:       settings.Output,
		Mode:         settings.Mode,
		Structural:   settings.TreeSitter,
		FrameNumbers: settings.FrameNumbers,
		Draft:        settings.Draft,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(settings)
	if err != nil {
		return err
	}

	stop := showProgress(cmd.ErrOrStderr(), a.builder)
	report, err := a.builder.Build(cmd.Context(), buildRequest(settings, args[0]))
	stop()

	printReport(cmd.OutOrStdout(), report, err)
	return err
}
