package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure ArtifactCache implements the interface.
var _ driven.ArtifactCache = (*ArtifactCache)(nil)

// AppName names the cache root under the user cache directory.
const AppName = "faster-beamer"

// File extensions inside the cache.
const (
	artifactExt = ".pdf"
	sourceExt   = ".tex"
)

// ArtifactCache is a directory of fingerprint-named files.
type ArtifactCache struct {
	dir string
}

// NewArtifactCache creates the cache directory if needed.
func NewArtifactCache(dir string) (*ArtifactCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create cache dir: %w", domain.ErrIO, err)
	}
	return &ArtifactCache{dir: dir}, nil
}

// ForInput opens the cache subfolder that belongs to inputPath's directory.
func ForInput(root, inputPath string) (*ArtifactCache, error) {
	dir, err := InputDir(root, inputPath)
	if err != nil {
		return nil, err
	}
	return NewArtifactCache(dir)
}

// InputDir returns the cache subfolder for inputPath without creating it.
func InputDir(root, inputPath string) (string, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: resolve input path: %w", domain.ErrIO, err)
	}
	return filepath.Join(root, EscapeDir(filepath.Dir(abs))), nil
}

// Root returns override when set, else <user cache dir>/faster-beamer.
func Root(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: locate user cache dir: %w", domain.ErrIO, err)
	}
	return filepath.Join(base, AppName), nil
}

// maxNameLen keeps cache folder names below common path element limits.
const maxNameLen = 200

// EscapeDir turns a directory path into one folder name made of ASCII
// letters, digits, '.' and '_'. Every other byte becomes -XX, so the name is
// valid on every platform and can be read by TeX unquoted. Names longer than
// maxNameLen are cut and suffixed with a fingerprint of dir.
func EscapeDir(dir string) string {
	var b strings.Builder
	b.Grow(len(dir) + 16)
	for i := 0; i < len(dir); i++ {
		c := dir[i]
		if isPlain(c) && (i > 0 || c != '.') {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "-%02X", c)
	}

	name := b.String()
	if len(name) > maxNameLen {
		sum := domain.FingerprintOf(dir).String()
		name = name[:maxNameLen-len(sum)-1] + "-" + sum
	}
	return name
}

func isPlain(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '.' || c == '_'
}

// Dir returns the cache directory.
func (c *ArtifactCache) Dir() string {
	return c.dir
}

// Path returns the artifact path for key.
func (c *ArtifactCache) Path(key domain.Fingerprint) string {
	return filepath.Join(c.dir, key.String()+artifactExt)
}

// SourcePath returns the intermediate source path for key.
func (c *ArtifactCache) SourcePath(key domain.Fingerprint) string {
	return filepath.Join(c.dir, key.String()+sourceExt)
}

// Has reports whether a non-empty artifact exists for key.
func (c *ArtifactCache) Has(key domain.Fingerprint) bool {
	return IsComplete(c.Path(key))
}

// Put stores data as the artifact for key.
func (c *ArtifactCache) Put(key domain.Fingerprint, data []byte) error {
	if err := WriteAtomic(c.Path(key), data); err != nil {
		return fmt.Errorf("%w: store artifact %s: %w", domain.ErrIO, key, err)
	}
	return nil
}

// PutSource stores the intermediate source for key and returns its path.
func (c *ArtifactCache) PutSource(key domain.Fingerprint, text string) (string, error) {
	path := c.SourcePath(key)
	if err := WriteAtomic(path, []byte(text)); err != nil {
		return "", fmt.Errorf("%w: store source %s: %w", domain.ErrIO, key, err)
	}
	return path, nil
}

// IsComplete reports whether path is a regular, non-empty file.
func IsComplete(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// WriteAtomic writes data to a temporary file next to dest and renames it
// into place.
func WriteAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
