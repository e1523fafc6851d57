package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// FileName is the configuration file inside the config directory.
const FileName = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewConfigStore creates a store for <configDir>/config.toml.
// If configDir is empty, defaults to <user config dir>/faster-beamer.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(base, "faster-beamer")
	}
	return &ConfigStore{filePath: filepath.Join(configDir, FileName)}, nil
}

// NewConfigStoreAt creates a store for an explicit file path.
func NewConfigStoreAt(path string) *ConfigStore {
	return &ConfigStore{filePath: path}
}

// Load reads settings from the TOML file. Keys absent from the file keep
// their default values; a missing file yields the defaults.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file yet - that's fine, use defaults
			return settings, nil
		}
		return settings, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("%s: %w", s.filePath, err)
	}
	return settings, nil
}

// Save writes settings to the TOML file, creating the directory if needed.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0o600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Encode renders settings as TOML.
func Encode(settings domain.Settings) (string, error) {
	data, err := toml.Marshal(settings)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
