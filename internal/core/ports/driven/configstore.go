package driven

import "github.com/custodia-labs/faster-beamer/internal/core/domain"

// ConfigStore provides access to persisted build defaults.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Load reads settings, falling back to defaults for absent keys.
	// A missing file is not an error.
	Load() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
