package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.WatchCatalog)
	assert.False(t, cfg.Verbose)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := &Config{
		DataDir:      "/var/lib/gardenlog",
		CatalogPath:  "/etc/gardenlog/plants.json",
		WatchCatalog: true,
		Verbose:      true,
	}
	require.NoError(t, saved.Save(dir))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	require.NoError(t, (&Config{Verbose: true}).Save(dir))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("data_dir = ["), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	data := "verbose = true\nfuture_setting = \"x\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}
