// Package config manages the seqscope on-disk configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/seqwell/seqscope/internal/seqfile"
)

// Config holds the seqscope configuration.
type Config struct {
	// Extensions are the file extensions the catalog walk matches.
	Extensions []string `toml:"extensions"`
	// QuickMin and QuickMax are the bounds set by the m/M shortcuts.
	QuickMin int `toml:"quick_min"`
	QuickMax int `toml:"quick_max"`
	// FollowSymlinks makes discovery descend into symlinked directories.
	FollowSymlinks bool `toml:"follow_symlinks"`
	// Watch enables the catalog staleness indicator in the TUI.
	Watch bool `toml:"watch"`
	// Locale selects the UI language.
	Locale string `toml:"locale"`
}

// Dir returns the path to the .seqscope directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seqscope"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns a configuration with all defaults set.
func Default() Config {
	return Config{
		Extensions:     append([]string(nil), seqfile.DefaultExtensions...),
		QuickMin:       1000,
		QuickMax:       10000,
		FollowSymlinks: true,
		Watch:          false,
		Locale:         "en",
	}
}

// Load reads the config from path, or from ~/.seqscope/config.toml when
// path is empty. A missing file yields the defaults, persisted to disk
// on a best-effort basis. Decoding starts from the defaults so missing
// keys keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		_ = Save(cfg, path)
		return cfg, nil
	} else if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), seqfile.DefaultExtensions...)
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
