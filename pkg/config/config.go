// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional file-based configuration shared by both
// tools. Values act as defaults; explicit CLI flags take precedence.
type Config struct {
	// Decoding
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Conversion defaults
	Quality string `yaml:"quality"`
	FPS     int    `yaml:"fps"`
	Width   int    `yaml:"width"`

	// Named quality preset overrides, keyed by preset name
	Presets map[string]PresetConfig `yaml:"presets"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`

	// Progress
	NoProgress bool `yaml:"no_progress"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// PresetConfig overrides the parameters of a named quality preset.
// Zero values leave the built-in parameter untouched.
type PresetConfig struct {
	FPS         int     `yaml:"fps"`
	ScaleFactor float64 `yaml:"scale_factor"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Quality:  "medium",
		FPS:      10,
		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// PresetOverride reports the file-level override for the named preset,
// if any.
func (c Config) PresetOverride(name string) (PresetConfig, bool) {
	p, ok := c.Presets[name]
	return p, ok
}
