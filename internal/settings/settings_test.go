package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *s)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# nothing yet\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "system", s.Theme)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSetSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s := Default()
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Set("zoom", "1.25"))
	require.NoError(t, s.Set("dex", "updated-alola"))
	require.NoError(t, s.Set("toggle.shiny", "true"))
	require.NoError(t, s.Save(path))

	got, err := Load(path)
	require.NoError(t, err)

	theme, _ := got.Get("theme")
	zoom, _ := got.Get("zoom")
	dex, _ := got.Get("dex")
	shiny, _ := got.Get("toggle.shiny")
	missing, _ := got.Get("toggle.missing")
	assert.Equal(t, "dark", theme)
	assert.Equal(t, "1.25", zoom)
	assert.Equal(t, "updated-alola", dex)
	assert.Equal(t, "true", shiny)
	assert.Equal(t, "false", missing)
	assert.Equal(t, []string{"theme", "zoom", "dex", "toggle.shiny"}, got.Keys())
}

func TestSetValidation(t *testing.T) {
	s := Default()
	assert.Error(t, s.Set("theme", "neon"))
	assert.Error(t, s.Set("zoom", "0"))
	assert.Error(t, s.Set("zoom", "big"))
	assert.Error(t, s.Set("toggle.x", "maybe"))
	assert.Error(t, s.Set("volume", "11"))
	_, err := s.Get("volume")
	assert.Error(t, err)
}
