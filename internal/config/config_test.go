package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to a temp directory so LocalPath() resolves inside it.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	chdir(t)

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)

	opts := cfg.RenderOptions()
	assert.Equal(t, byte('*'), opts.ListMarker)
	assert.Equal(t, 3, opts.FenceTokens)
	assert.Equal(t, "", cfg.AuthorString())
}

func TestSaveAndLoadLocal(t *testing.T) {
	chdir(t)

	cfg := &Config{scope: ScopeLocal}
	require.NoError(t, cfg.Set("author.name", "Test User"))
	require.NoError(t, cfg.Set("author.email", "test@example.org"))
	require.NoError(t, cfg.Set("render.list_marker", "-"))
	require.NoError(t, cfg.Set("render.fence_tokens", "4"))
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.Equal(t, "Test User <test@example.org>", loaded.AuthorString())

	opts := loaded.RenderOptions()
	assert.Equal(t, byte('-'), opts.ListMarker)
	assert.Equal(t, 4, opts.FenceTokens)
}

func TestSetValidation(t *testing.T) {
	cfg := &Config{}

	err := cfg.Set("render.list_marker", "#")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = cfg.Set("render.fence_tokens", "2")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = cfg.Set("no.such.key", "x")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t)

	require.NoError(t, os.MkdirAll(".mdast", 0755))
	bad := "render:\n  fence_tokens: 99\n"
	require.NoError(t, os.WriteFile(filepath.Join(".mdast", "config.yaml"), []byte(bad), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestGetAndIsSet(t *testing.T) {
	cfg := &Config{}

	v, err := cfg.Get("render.list_marker")
	require.NoError(t, err)
	assert.Equal(t, "*", v)
	assert.False(t, cfg.IsSet("render.list_marker"))

	require.NoError(t, cfg.Set("render.list_marker", "+"))
	v, err = cfg.Get("render.list_marker")
	require.NoError(t, err)
	assert.Equal(t, "+", v)
	assert.True(t, cfg.IsSet("render.list_marker"))

	_, err = cfg.Get("bogus")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestValidKeys(t *testing.T) {
	for _, key := range ValidKeys() {
		assert.True(t, IsValidKey(key), key)
	}
	assert.False(t, IsValidKey("sync.files"))
}
