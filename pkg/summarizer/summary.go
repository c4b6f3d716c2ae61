// Package summarizer provides summary generation for conversion results.
package summarizer

import "time"

// Summary contains all data collected during a conversion run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source clip information
	Inputs InputInfo

	// Conversion settings
	Settings Settings

	// GIF output details
	Output OutputInfo
}

// InputInfo describes the source clips.
type InputInfo struct {
	Paths            []string
	Skipped          int
	TotalDurationSec float64
}

// Settings contains the conversion configuration.
type Settings struct {
	Quality string
	FPS     int
	Width   int
	Height  int
}

// OutputInfo describes the generated GIF.
type OutputInfo struct {
	Path       string
	FrameCount int
	DurationMs int
	FileSize   int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInputs sets source clip information.
func (b *Builder) WithInputs(paths []string, skipped int, totalDurationSec float64) *Builder {
	b.summary.Inputs = InputInfo{
		Paths:            paths,
		Skipped:          skipped,
		TotalDurationSec: totalDurationSec,
	}
	return b
}

// WithSettings sets conversion settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets GIF output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
