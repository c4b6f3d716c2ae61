// Package extract implements the frame decoding stage.
package extract

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage decodes each clip into RGBA frames at the resolved frame rate
// and the clip's native geometry. Resizing happens downstream.
type Stage struct {
	streamer ports.FrameStreamer
	sink     ports.DebugSink
	progress ports.Progress
	logger   ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(streamer ports.FrameStreamer, sink ports.DebugSink, progress ports.Progress, logger ports.Logger) *Stage {
	return &Stage{
		streamer: streamer,
		sink:     sink,
		progress: progress,
		logger:   logger.WithComponent("extract"),
	}
}

// Execute decodes all clips in order.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{
		Sequences: make([]pipeline.ClipFrames, 0, len(input.Clips)),
	}

	rawIndex := 0
	for _, clip := range input.Clips {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frames, err := s.extractClip(ctx, clip, input.FPS, &rawIndex)
		if err != nil {
			return result, fmt.Errorf("decode %s: %w", clip.Path, err)
		}

		result.Sequences = append(result.Sequences, pipeline.ClipFrames{
			Clip:   clip,
			Frames: frames,
		})
	}

	return result, nil
}

// extractClip drains one decoder stream. The stream is closed on every
// path.
func (s *Stage) extractClip(ctx context.Context, clip ports.ClipInfo, fps int, rawIndex *int) ([]image.Image, error) {
	opts := ports.DecodeOptions{
		FPS:    fps,
		Width:  clip.Width,
		Height: clip.Height,
	}

	stream, err := s.streamer.OpenStream(ctx, clip, opts)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	expected := int(clip.DurationSec * float64(fps))
	if expected <= 0 {
		expected = -1
	}
	s.progress.Start(expected, fmt.Sprintf("Extracting %s", filepath.Base(clip.Path)))
	defer s.progress.Finish()

	var frames []image.Image
	for stream.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		frame := stream.Frame()
		frames = append(frames, frame)
		s.progress.Add(1)

		if s.sink.Enabled() {
			if err := s.sink.SaveRawFrame(*rawIndex, frame); err != nil {
				s.logger.Warn("Failed to save raw frame %d: %v", *rawIndex, err)
			}
		}
		*rawIndex++
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("Extracted %d frames from %s", len(frames), filepath.Base(clip.Path))
	return frames, nil
}
