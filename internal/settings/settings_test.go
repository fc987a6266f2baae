package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := Settings{
		User:     "admin",
		Firewall: "fw01.example.com",
		Panorama: "panorama01.example.com",
		APIKey:   "LUFRPT1abc123==",
		Format:   "table",
	}
	require.NoError(t, saved.SaveTo(dir))

	loaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveFileMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Settings{APIKey: "secret"}.SaveTo(dir))

	info, err := os.Stat(filepath.Join(dir, FileName+".yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "settings file holds an API key")
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := LoadFrom(t.TempDir())
	require.NoError(t, err, "a missing settings file is not an error")
	assert.Equal(t, Settings{}, loaded)
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("{{not yaml"), 0o600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Settings{User: "old"}.SaveTo(dir))
	require.NoError(t, Settings{User: "new"}.SaveTo(dir))

	loaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.User)
}
