package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())

	var _ driven.ConfigStore = store
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	base, err := os.UserConfigDir()
	if err != nil {
		t.Skip("Cannot determine config directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "faster-beamer", "config.toml"), store.Path())
}

func TestConfigStore_LoadMissingFileGivesDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestConfigStore_LoadPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
compiler = "lualatex"
mode = "unite"
frame_numbers = true
jobs = 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "lualatex", settings.Compiler)
	assert.Equal(t, domain.ModeStitch, settings.Mode)
	assert.True(t, settings.FrameNumbers)
	assert.Equal(t, 2, settings.Jobs)
	assert.Equal(t, "pdfunite", settings.ConcatTool, "absent keys keep defaults")
	assert.Equal(t, "output.pdf", settings.Output)
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("compiler = [unterminated"), 0o600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, err = store.Load()

	assert.Error(t, err)
}

func TestConfigStore_LoadInvalidMode(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(`mode = "slideshow"`), 0o600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigStore_SaveAndReload(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.Compiler = "xelatex"
	want.TreeSitter = true
	want.Mode = domain.ModeConcat
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_SaveRejectsInvalid(t *testing.T) {
	store := NewConfigStoreAt(filepath.Join(t.TempDir(), "config.toml"))

	err := store.Save(domain.Settings{Mode: "bogus"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoFileExists(t, store.Path())
}

func TestEncode(t *testing.T) {
	out, err := Encode(domain.DefaultSettings())

	require.NoError(t, err)
	assert.Contains(t, out, "compiler = ")
	assert.Contains(t, out, "pdflatex")
	assert.Contains(t, out, "preview")
}
