package driven

import "github.com/custodia-labs/faster-beamer/internal/core/domain"

// ArtifactCache stores rendered units by fingerprint.
// Entries are never evicted.
type ArtifactCache interface {
	// Dir returns the directory the cache lives in.
	Dir() string

	// Has reports whether a complete artifact exists for key.
	Has(key domain.Fingerprint) bool

	// Path returns where the artifact for key lives (or would live).
	Path(key domain.Fingerprint) string

	// Put stores an artifact. A reader never observes a partial write.
	Put(key domain.Fingerprint, data []byte) error

	// PutSource stores the intermediate source for key and returns its path.
	PutSource(key domain.Fingerprint, text string) (string, error)
}

// OutputLinker exposes an artifact at the user-visible output path.
type OutputLinker interface {
	// Link replaces output with a link to target.
	Link(target, output string) error

	// Remove deletes output. A missing output is not an error.
	Remove(output string) error
}
