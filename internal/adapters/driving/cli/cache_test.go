package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
)

func TestCachePathCmd_Root(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())
	root := filepath.Join(t.TempDir(), "cache")

	require.NoError(t, env.run("cache", "path", "--cache-dir", root))

	assert.Equal(t, root, strings.TrimSpace(env.out.String()))
	assert.NoDirExists(t, root)
}

func TestCachePathCmd_Input(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())
	root := t.TempDir()

	require.NoError(t, env.run("cache", "path", "--cache-dir", root, "/slides/talk.tex"))

	assert.Equal(t, filepath.Join(root, filesystem.EscapeDir("/slides")), strings.TrimSpace(env.out.String()))
}

func TestCachePathCmd_ConfigCacheDir(t *testing.T) {
	config := domain.DefaultSettings()
	config.CacheDir = "/var/cache/fb"
	env := setupTestEnv(t, config)

	require.NoError(t, env.run("cache", "path"))

	assert.Equal(t, "/var/cache/fb", strings.TrimSpace(env.out.String()))
}
