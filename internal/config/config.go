// ABOUTME: Tool configuration loading and defaults
// ABOUTME: Reads the TOML config from XDG config home, falling back to built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's few knobs. The timezone is the fixed local zone
// every timestamp and date conversion uses; it travels explicitly into the
// importer rather than living in a global.
type Config struct {
	Timezone string `toml:"timezone"`
	Database string `toml:"database"`
	DocsDir  string `toml:"docs_dir"`
}

// Default returns the built-in configuration matching the consumer app's
// conventions: diary.sqlite3 in the working directory, a docs/ input
// directory, and America/Vancouver dates.
func Default() Config {
	return Config{
		Timezone: "America/Vancouver",
		Database: "diary.sqlite3",
		DocsDir:  "docs",
	}
}

// Load returns the configuration from $XDG_CONFIG_HOME/diary/config.toml,
// or the defaults if no config file exists. Keys missing from the file keep
// their default values.
func Load() (Config, error) {
	cfg := Default()

	path := filepath.Join(GetConfigHome(), "diary", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return cfg, nil
}

// Location resolves the configured timezone name.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}
