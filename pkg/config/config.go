// Package config loads cardtree's runtime configuration from a YAML file
// at a user-level path, creating a default on first run (grounded on
// cmd/aleutian/config/loader.go's pattern in the reference CLI).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoggingConfig mirrors the pkg/logging.Config fields that are exposed to
// the user. cmd/cardtree does not read it: its logger is logging.Default().
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogDir  string `yaml:"log_dir"`
	JSON    bool   `yaml:"json"`
	Service string `yaml:"service"`
}

// TuiConfig holds the TUI renderer's size and cosmetic choices. cmd/cardtree
// reads Width and Height; BulletGlyph and QuoteIndent are not applied (the
// renderers are built with tui.DefaultConfig()).
type TuiConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BulletGlyph string `yaml:"bullet_glyph"`
	QuoteIndent int    `yaml:"quote_indent"`
}

// MetricsConfig holds the Prometheus listener settings. The metrics-serve
// command listens on Addr; Enabled is not read by cmd/cardtree.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Config is cardtree's top-level, YAML-serializable configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Tui     TuiConfig     `yaml:"tui"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Service: "cardtree"},
		Tui:     TuiConfig{Width: 80, Height: 24, BulletGlyph: "•", QuoteIndent: 2},
		Metrics: MetricsConfig{Enabled: false, Addr: ":9090"},
	}
}

// DefaultPath returns "~/.cardtree/cardtree.yaml".
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".cardtree", "cardtree.yaml"), nil
}

// Load reads path, creating it with Default() contents first if it does
// not exist. An empty path resolves to DefaultPath().
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
