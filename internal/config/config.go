// Package config provides configuration types, defaults, and persistence
// for minemsg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/minemsg/internal/log"
)

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	// Width wraps rendered output at the given column; 0 disables
	// wrapping.
	Width int `mapstructure:"width" yaml:"width"`

	// Color selects the output color mode: "auto" (detect the terminal),
	// "always" (truecolor), or "never" (plain text).
	Color string `mapstructure:"color" yaml:"color"`
}

// Config holds all configuration options for minemsg.
type Config struct {
	// Strict is reserved for a parsing mode that requires every styled
	// tag to be closed.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// LegacyColors enables &x color-code recognition while parsing.
	LegacyColors bool `mapstructure:"legacy_colors" yaml:"legacy_colors"`

	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Strict:       false,
		LegacyColors: false,
		Render: RenderConfig{
			Width: 0,
			Color: "auto",
		},
	}
}

// Validate checks option values that have a closed set of valid inputs.
func (c Config) Validate() error {
	switch c.Render.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("render.color must be auto, always, or never, got %q", c.Render.Color)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width must not be negative, got %d", c.Render.Width)
	}
	return nil
}

const configHeader = `# minemsg configuration
#
# strict: reserved; require every styled tag to be closed
# legacy_colors: recognize &x color codes while parsing
# render.width: wrap rendered output at this column (0 = no wrapping)
# render.color: auto | always | never
`

// WriteDefaultConfig writes the default configuration to the given path,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
