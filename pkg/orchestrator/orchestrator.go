// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Config contains all configuration for a conversion run.
type Config struct {
	// Input
	Inputs     []string // file paths or glob patterns, in user order
	OutputPath string   // empty derives the path from the inputs

	// Conversion
	FPS   int // the --fps argument
	Width int // the --width argument, 0 defers to the preset scale

	// Quality preset values, resolved by the caller
	PresetFPS   int
	ScaleFactor float64

	// DefaultFPS is the tool's built-in frame rate. The preset rate
	// applies only while FPS equals this value.
	DefaultFPS int
}

// DefaultConfig returns a Config with default values (the medium
// quality preset).
func DefaultConfig() Config {
	return Config{
		FPS:         10,
		PresetFPS:   10,
		ScaleFactor: 0.7,
		DefaultFPS:  10,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	resolveStage   pipeline.Stage[pipeline.ResolveInput, pipeline.ResolveResult]
	probeStage     pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	planStage      pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult]
	extractStage   pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult]
	concatStage    pipeline.Stage[pipeline.ConcatInput, pipeline.ConcatResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs             ports.FileSystem
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	resolveStage pipeline.Stage[pipeline.ResolveInput, pipeline.ResolveResult],
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	planStage pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult],
	concatStage pipeline.Stage[pipeline.ConcatInput, pipeline.ConcatResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		resolveStage:   resolveStage,
		probeStage:     probeStage,
		planStage:      planStage,
		extractStage:   extractStage,
		transformStage: transformStage,
		concatStage:    concatStage,
		encodeStage:    encodeStage,
		fs:             fs,
		logger:         logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Debug("Starting conversion with %d input(s)", len(config.Inputs))

	// 1. Resolve inputs
	resolved, err := o.resolveStage.Execute(ctx, pipeline.ResolveInput{
		Patterns: config.Inputs,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to resolve inputs: %s", err))
		return RunResult{}, fmt.Errorf("resolve inputs: %w", err)
	}

	outputPath := config.OutputPath
	if outputPath == "" {
		outputPath = deriveOutputPath(resolved.Paths)
	}

	// 2. Probe clip metadata
	probed, err := o.probeStage.Execute(ctx, pipeline.ProbeInput{
		Paths: resolved.Paths,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to probe clips: %s", err))
		return RunResult{}, fmt.Errorf("probe clips: %w", err)
	}

	// 3. Plan target geometry from the first clip
	first := probed.Clips[0]
	plan, err := o.planStage.Execute(ctx, pipeline.PlanInput{
		NativeWidth:    first.Width,
		NativeHeight:   first.Height,
		RequestedWidth: config.Width,
		ScaleFactor:    config.ScaleFactor,
		RequestedFPS:   config.FPS,
		PresetFPS:      config.PresetFPS,
		DefaultFPS:     config.DefaultFPS,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to plan conversion: %s", err))
		return RunResult{}, fmt.Errorf("plan conversion: %w", err)
	}

	// 4. Extract frames
	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
		Clips: probed.Clips,
		FPS:   plan.FPS,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode video: %s", err))
		return RunResult{}, fmt.Errorf("extract frames: %w", err)
	}

	// 5. Resize to the target geometry
	transformed, err := o.transformStage.Execute(ctx, pipeline.TransformInput{
		Sequences: extracted.Sequences,
		Target:    plan.Target,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to resize frames: %s", err))
		return RunResult{}, fmt.Errorf("resize frames: %w", err)
	}

	// 6. Combine clips in input order
	combined, err := o.concatStage.Execute(ctx, pipeline.ConcatInput{
		Sequences: transformed.Sequences,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to combine clips: %s", err))
		return RunResult{}, fmt.Errorf("combine clips: %w", err)
	}

	// 7. Encode the looping GIF
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames: combined.Frames,
		Target: plan.Target,
		FPS:    plan.FPS,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode GIF: %s", err))
		return RunResult{}, fmt.Errorf("encode GIF: %w", err)
	}

	// 8. Write the output only after the whole GIF is assembled, so a
	// failed run leaves no partial file behind.
	if err := o.fs.WriteFile(outputPath, encoded.GIFData); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	fileSize := int64(len(encoded.GIFData))
	o.logger.Info(l10n.F("Successfully created looping GIF: %s", outputPath))
	o.logger.Info(l10n.F("Videos combined: %d", combined.ClipCount))
	o.logger.Info(l10n.F("Total duration: %.1f seconds", probed.TotalDurationSec))
	o.logger.Info(l10n.F("File size: %d bytes (%.1f MB)", fileSize, float64(fileSize)/1024/1024))

	result := RunResult{
		OutputPath:       outputPath,
		InputPaths:       resolved.Paths,
		SkippedInputs:    resolved.Skipped,
		ClipCount:        combined.ClipCount,
		TotalDurationSec: probed.TotalDurationSec,
		FrameCount:       encoded.FrameCount,
		Width:            plan.Target.Width,
		Height:           plan.Target.Height,
		FPS:              plan.FPS,
		DurationMs:       encoded.DurationMs,
		FileSizeBytes:    fileSize,
	}

	return result, nil
}

// deriveOutputPath picks the output location when none was given: a
// single input swaps its extension for .gif, several inputs combine
// into combined_video.gif next to the first.
func deriveOutputPath(paths []string) string {
	if len(paths) == 1 {
		base := strings.TrimSuffix(paths[0], filepath.Ext(paths[0]))
		return base + ".gif"
	}
	return filepath.Join(filepath.Dir(paths[0]), "combined_video.gif")
}

// RunResult contains the results of a conversion run for summary
// generation.
type RunResult struct {
	// Input information
	OutputPath    string
	InputPaths    []string
	SkippedInputs int

	// Conversion information
	ClipCount        int
	TotalDurationSec float64
	FrameCount       int
	Width            int
	Height           int
	FPS              int

	// Output information
	DurationMs    int // declared playback duration of one loop
	FileSizeBytes int64
}
