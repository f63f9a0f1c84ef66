package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted application configuration. An absent file
// means all defaults; unknown keys are ignored.
type Config struct {
	// DataDir is where the SQLite store lives.
	// Empty means ~/.gardenlog/data.
	DataDir string `toml:"data_dir"`

	// CatalogPath points at an external plant catalog JSON file.
	// Empty means the embedded default catalog.
	CatalogPath string `toml:"catalog_path"`

	// WatchCatalog re-seeds the store when the catalog file changes.
	// Only meaningful with a CatalogPath.
	WatchCatalog bool `toml:"watch_catalog"`

	// Verbose enables debug logging to stderr.
	Verbose bool `toml:"verbose"`
}

// Load reads config.toml from configDir. If configDir is empty it
// defaults to ~/.gardenlog. A missing file yields the zero config.
func Load(configDir string) (*Config, error) {
	path, err := configPath(configDir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config as TOML, creating the directory if needed.
func (c *Config) Save(configDir string) error {
	path, err := configPath(configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func configPath(configDir string) (string, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".gardenlog")
	}
	return filepath.Join(configDir, "config.toml"), nil
}
