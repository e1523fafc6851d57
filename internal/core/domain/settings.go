package domain

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Settings are the persisted build defaults. Flags given on the command
// line take precedence over these values.
type Settings struct {
	// Compiler is the typesetting binary.
	Compiler string `toml:"compiler"`

	// ConcatTool is the page concatenation binary.
	ConcatTool string `toml:"concat_tool"`

	// Mode is the default output mode.
	Mode OutputMode `toml:"mode"`

	// Output is the default output path.
	Output string `toml:"output"`

	// Jobs bounds the number of concurrent compiler processes.
	Jobs int `toml:"jobs"`

	// Draft selects the draft format variant.
	Draft bool `toml:"draft"`

	// TreeSitter enables structural frame extraction.
	TreeSitter bool `toml:"tree_sitter"`

	// FrameNumbers enables slide number correction in compile units.
	FrameNumbers bool `toml:"frame_numbers"`

	// CacheDir overrides the artifact cache root.
	CacheDir string `toml:"cache_dir"`

	// WatchIntervalMS is the minimum delay between two watch rebuilds.
	WatchIntervalMS int `toml:"watch_interval_ms"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Compiler:        DefaultCompiler,
		ConcatTool:      DefaultConcatTool,
		Mode:            ModePreview,
		Output:          DefaultOutput,
		Jobs:            runtime.NumCPU(),
		WatchIntervalMS: 250,
	}
}

// WithDefaults fills zero values from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if strings.TrimSpace(s.Compiler) == "" {
		s.Compiler = d.Compiler
	}
	if strings.TrimSpace(s.ConcatTool) == "" {
		s.ConcatTool = d.ConcatTool
	}
	if s.Mode == "" {
		s.Mode = d.Mode
	}
	if strings.TrimSpace(s.Output) == "" {
		s.Output = d.Output
	}
	if s.Jobs <= 0 {
		s.Jobs = d.Jobs
	}
	if s.WatchIntervalMS <= 0 {
		s.WatchIntervalMS = d.WatchIntervalMS
	}
	return s
}

// WatchInterval returns the watch rebuild interval.
func (s Settings) WatchInterval() time.Duration {
	return time.Duration(s.WatchIntervalMS) * time.Millisecond
}

// Validate checks the settings hold usable values.
func (s Settings) Validate() error {
	if !s.Mode.IsValid() {
		return fmt.Errorf("%w: unknown output mode %q", ErrInvalidInput, s.Mode)
	}
	if s.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", ErrInvalidInput)
	}
	return nil
}
