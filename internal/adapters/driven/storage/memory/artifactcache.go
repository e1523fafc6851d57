package memory

import (
	"path/filepath"
	"sync"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure ArtifactCache implements the interface.
var _ driven.ArtifactCache = (*ArtifactCache)(nil)

// ArtifactCache is an in-memory implementation of driven.ArtifactCache.
// Paths are computed under a virtual directory and never touch the disk.
type ArtifactCache struct {
	mu        sync.RWMutex
	dir       string
	artifacts map[domain.Fingerprint][]byte
	sources   map[domain.Fingerprint]string
	puts      int
}

// NewArtifactCache creates an empty cache rooted at the virtual dir.
func NewArtifactCache(dir string) *ArtifactCache {
	return &ArtifactCache{
		dir:       dir,
		artifacts: make(map[domain.Fingerprint][]byte),
		sources:   make(map[domain.Fingerprint]string),
	}
}

// Dir returns the virtual directory.
func (c *ArtifactCache) Dir() string {
	return c.dir
}

// Has reports whether an artifact was stored for key.
func (c *ArtifactCache) Has(key domain.Fingerprint) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.artifacts[key]
	return ok && len(data) > 0
}

// Path returns the virtual artifact path for key.
func (c *ArtifactCache) Path(key domain.Fingerprint) string {
	return filepath.Join(c.dir, key.String()+".pdf")
}

// Put stores a copy of data.
func (c *ArtifactCache) Put(key domain.Fingerprint, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.artifacts[key] = append([]byte(nil), data...)
	c.puts++
	return nil
}

// PutSource stores text and returns its virtual path.
func (c *ArtifactCache) PutSource(key domain.Fingerprint, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[key] = text
	return filepath.Join(c.dir, key.String()+".tex"), nil
}

// Get returns the stored artifact for key.
func (c *ArtifactCache) Get(key domain.Fingerprint) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.artifacts[key]
	return data, ok
}

// Source returns the stored intermediate source for key.
func (c *ArtifactCache) Source(key domain.Fingerprint) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.sources[key]
	return text, ok
}

// Puts returns how many artifacts were stored.
func (c *ArtifactCache) Puts() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.puts
}
