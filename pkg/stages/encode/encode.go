// Package encode implements the GIF assembly stage.
package encode

import (
	"context"
	"fmt"
	"math"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage encodes the combined frames into a looping GIF. The whole
// animation is assembled in memory; writing it out is the caller's
// job.
type Stage struct {
	encoder  ports.AnimationEncoder
	progress ports.Progress
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.AnimationEncoder, progress ports.Progress, logger ports.Logger) *Stage {
	return &Stage{
		encoder:  encoder,
		progress: progress,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes all frames into a GIF with infinite repeat.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to encode")
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("invalid frame rate: %d", input.FPS)
	}

	delayMS := int(math.Round(1000.0 / float64(input.FPS)))

	if err := s.encoder.Begin(input.Target.Width, input.Target.Height); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	s.progress.Start(len(input.Frames), "Encoding GIF")
	defer s.progress.Finish()

	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.encoder.AddFrame(frame, delayMS, 0); err != nil {
			return result, fmt.Errorf("encode frame %d: %w", i, err)
		}
		s.progress.Add(1)
	}

	data, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}

	result.GIFData = data
	result.FrameCount = len(input.Frames)
	result.DurationMs = len(input.Frames) * delayMS

	s.logger.Debug("Encoded %d frames at %d fps (%d bytes)",
		result.FrameCount, input.FPS, len(data))

	return result, nil
}
