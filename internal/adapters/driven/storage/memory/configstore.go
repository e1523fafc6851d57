package memory

import (
	"sync"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu       sync.RWMutex
	settings domain.Settings
	saves    int
}

// NewConfigStore creates a config store holding the built-in defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{settings: domain.DefaultSettings()}
}

// NewConfigStoreWith creates a config store holding settings.
func NewConfigStoreWith(settings domain.Settings) *ConfigStore {
	return &ConfigStore{settings: settings}
}

// Load returns the stored settings with defaults filled in.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.WithDefaults(), nil
}

// Save replaces the stored settings.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.saves++
	return nil
}

// Path returns an empty path; nothing is persisted.
func (s *ConfigStore) Path() string {
	return ""
}

// Saves returns how many times Save was called.
func (s *ConfigStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
