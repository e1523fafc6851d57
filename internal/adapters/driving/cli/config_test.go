package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

func TestConfigShowCmd_PrintsEffectiveSettings(t *testing.T) {
	config := domain.DefaultSettings()
	config.Compiler = "lualatex"
	env := setupTestEnv(t, config)

	require.NoError(t, env.run("config", "show", "--mode", "unite"))

	out := env.out.String()
	assert.Contains(t, out, "compiler")
	assert.Contains(t, out, "lualatex")
	assert.Contains(t, out, "unite")
	assert.Contains(t, out, "watch_interval_ms")
}

func TestConfigInitCmd_WritesDefaults(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	openConfigStore = func(string) (driven.ConfigStore, error) {
		return file.NewConfigStoreAt(path), nil
	}

	require.NoError(t, env.run("config", "init"))

	assert.FileExists(t, path)
	assert.Contains(t, env.out.String(), path)

	loaded, err := file.NewConfigStoreAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), loaded)
}

func TestConfigInitCmd_RefusesOverwrite(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("compiler = \"xelatex\"\n"), 0o600))
	openConfigStore = func(string) (driven.ConfigStore, error) {
		return file.NewConfigStoreAt(path), nil
	}

	err := env.run("config", "init")
	require.Error(t, err)

	require.NoError(t, env.run("config", "init", "--force"))
	loaded, err := file.NewConfigStoreAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCompiler, loaded.Compiler)
}

func TestConfigInitCmd_MemoryStore(t *testing.T) {
	env := setupTestEnv(t, domain.DefaultSettings())

	require.NoError(t, env.run("config", "init"))

	assert.Equal(t, 1, env.store.Saves())
}
