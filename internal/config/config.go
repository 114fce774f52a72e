// Package config loads dmerge configuration from a TOML file, falling back
// to built-in defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the complete dmerge configuration.
type Config struct {
	Diff DiffConfig `toml:"diff"`
	UI   UIConfig   `toml:"ui"`
}

// DiffConfig controls the diff engine.
type DiffConfig struct {
	ContextLines             int  `toml:"context_lines"`
	CollapseThreshold        int  `toml:"collapse_threshold"`
	IgnoreWhitespace         bool `toml:"ignore_whitespace"`
	IgnoreTrailingWhitespace bool `toml:"ignore_trailing_whitespace"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	SyntaxHighlight bool `toml:"syntax_highlight"`
	// Theme is a catppuccin flavor: latte, frappe, macchiato or mocha.
	Theme string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Diff: DiffConfig{
			ContextLines:      3,
			CollapseThreshold: 10,
		},
		UI: UIConfig{
			SyntaxHighlight: true,
			Theme:           "mocha",
		},
	}
}

// DefaultPath returns the expected location of the config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dmerge.toml"
	}
	return filepath.Join(home, ".config", "dmerge", "config.toml")
}

// Load reads the config file at the default path. A missing file is not an
// error; defaults are returned.
func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config file at path. Values not present in the file
// keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Diff.ContextLines < 0 {
		return fmt.Errorf("context_lines must be >= 0, got %d", c.Diff.ContextLines)
	}
	if c.Diff.CollapseThreshold < 1 {
		return fmt.Errorf("collapse_threshold must be >= 1, got %d", c.Diff.CollapseThreshold)
	}
	switch c.UI.Theme {
	case "latte", "frappe", "macchiato", "mocha":
		return nil
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
}
