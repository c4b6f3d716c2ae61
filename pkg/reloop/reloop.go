// Package reloop rewrites animated images so they repeat forever.
package reloop

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Input describes one reloop operation.
type Input struct {
	// InputPath is the animated image to rewrite.
	InputPath string

	// OutputPath overrides the derived <base>_looped.gif location.
	OutputPath string
}

// Result describes a finished reloop operation.
type Result struct {
	OutputPath    string
	FrameCount    int
	AvgDurationMS float64
	FileSizeBytes int64
}

// Stage re-encodes an animated image frame by frame with an infinite
// loop count. Frame durations are preserved.
type Stage struct {
	opener   ports.SequenceOpener
	encoder  ports.AnimationEncoder
	fs       ports.FileSystem
	progress ports.Progress
	logger   ports.Logger
}

// New creates a new reloop stage.
func New(opener ports.SequenceOpener, encoder ports.AnimationEncoder, fs ports.FileSystem, progress ports.Progress, logger ports.Logger) *Stage {
	return &Stage{
		opener:   opener,
		encoder:  encoder,
		fs:       fs,
		progress: progress,
		logger:   logger.WithComponent("reloop"),
	}
}

// Execute rewrites the input with infinite repeat. The output is
// written only after the whole animation is assembled.
func (s *Stage) Execute(ctx context.Context, input Input) (Result, error) {
	result := Result{}

	exists, err := s.fs.Exists(input.InputPath)
	if err != nil || !exists {
		return result, fmt.Errorf("%w: %s", ErrInputNotFound, input.InputPath)
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = deriveOutputPath(input.InputPath)
	}

	seq, err := s.opener.OpenSequence(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("open input: %w", err)
	}

	if format := seq.Format(); format != "gif" {
		s.logger.Warn("Input file is %s, not GIF. Converting anyway...", strings.ToUpper(format))
	}

	bounds := seq.Bounds()
	if err := s.encoder.Begin(bounds.Dx(), bounds.Dy()); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	// The frame count is unknown until the sequence is exhausted.
	s.progress.Start(-1, "Re-encoding frames")
	defer s.progress.Finish()

	frameCount := 0
	totalDurationMS := 0
	for seq.Next() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame := seq.Frame()
		if err := s.encoder.AddFrame(frame.Image, frame.DelayMS, frame.Disposal); err != nil {
			return result, fmt.Errorf("encode frame %d: %w", frameCount, err)
		}
		totalDurationMS += frame.DelayMS
		frameCount++
		s.progress.Add(1)
	}
	if err := seq.Err(); err != nil {
		return result, fmt.Errorf("read frames: %w", err)
	}

	if frameCount == 0 {
		return result, ErrNoFrames
	}

	data, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}

	if err := s.fs.WriteFile(outputPath, data); err != nil {
		return result, fmt.Errorf("write output: %w", err)
	}

	result.OutputPath = outputPath
	result.FrameCount = frameCount
	result.AvgDurationMS = float64(totalDurationMS) / float64(frameCount)
	result.FileSizeBytes = int64(len(data))

	s.logger.Info("Successfully created looping GIF: %s", outputPath)
	s.logger.Info("Frames: %d", result.FrameCount)
	s.logger.Info("Average duration: %.1fms per frame", result.AvgDurationMS)
	s.logger.Info("File size: %d bytes", result.FileSizeBytes)

	return result, nil
}

// deriveOutputPath appends _looped before the extension:
// animation.gif becomes animation_looped.gif.
func deriveOutputPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "_looped.gif"
}
