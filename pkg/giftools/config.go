// Package giftools provides a high-level API for converting videos into
// looping GIFs.
package giftools

import (
	"github.com/micahamd/gif-tools/pkg/orchestrator"
)

// QualityPreset represents a conversion quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// DefaultFPS is the frame rate assumed when no explicit rate is given.
// A requested rate equal to this value defers to the quality preset.
const DefaultFPS = 10

// QualitySettings contains the conversion parameters bundled by a preset.
type QualitySettings struct {
	FPS         int     // Output frame rate
	ScaleFactor float64 // Fraction of the source dimensions
}

// GetQualitySettings returns the settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{
			FPS:         8,
			ScaleFactor: 0.5,
		}
	case QualityHigh:
		return QualitySettings{
			FPS:         15,
			ScaleFactor: 1.0,
		}
	default: // medium
		return QualitySettings{
			FPS:         10,
			ScaleFactor: 0.7,
		}
	}
}

// Config represents the configuration for GIF conversion.
type Config struct {
	// Frame rate
	FPS       int // Requested rate; DefaultFPS defers to the preset
	PresetFPS int // Rate supplied by the active preset

	// Geometry
	Width       int     // Explicit output width (0 = scale the source)
	ScaleFactor float64 // Fraction of source dimensions when Width is 0

	// Decoding
	FFmpegPath string // ffmpeg binary override ("" = discover)
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with medium preset
// defaults.
func NewConfigBuilder() *ConfigBuilder {
	settings := GetQualitySettings(QualityMedium)
	return &ConfigBuilder{
		config: Config{
			FPS:         DefaultFPS,
			PresetFPS:   settings.FPS,
			ScaleFactor: settings.ScaleFactor,
		},
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.FPS < 1 {
		cfg.FPS = DefaultFPS
	}
	if cfg.PresetFPS < 1 {
		cfg.PresetFPS = DefaultFPS
	}
	if cfg.ScaleFactor <= 0 {
		cfg.ScaleFactor = GetQualitySettings(QualityMedium).ScaleFactor
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}

	return cfg
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	settings := GetQualitySettings(preset)
	b.config.PresetFPS = settings.FPS
	b.config.ScaleFactor = settings.ScaleFactor
	return b
}

// WithQualitySettings applies explicit preset parameters in place of the
// built-in preset values.
func (b *ConfigBuilder) WithQualitySettings(settings QualitySettings) *ConfigBuilder {
	b.config.PresetFPS = settings.FPS
	b.config.ScaleFactor = settings.ScaleFactor
	return b
}

// WithFPS sets the requested frame rate. A value equal to DefaultFPS
// defers to the active preset's rate.
func (b *ConfigBuilder) WithFPS(fps int) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithWidth sets an explicit output width; height follows the source
// aspect ratio.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.config.Width = width
	return b
}

// WithScaleFactor sets the fraction of the source dimensions used when
// no explicit width is given.
func (b *ConfigBuilder) WithScaleFactor(scale float64) *ConfigBuilder {
	b.config.ScaleFactor = scale
	return b
}

// WithFFmpegPath sets an explicit ffmpeg binary path.
func (b *ConfigBuilder) WithFFmpegPath(path string) *ConfigBuilder {
	b.config.FFmpegPath = path
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputs []string, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		Inputs:      inputs,
		OutputPath:  outputPath,
		FPS:         c.FPS,
		Width:       c.Width,
		PresetFPS:   c.PresetFPS,
		ScaleFactor: c.ScaleFactor,
		DefaultFPS:  DefaultFPS,
	}
}
