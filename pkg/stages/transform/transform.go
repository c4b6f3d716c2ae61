// Package transform implements the frame resizing stage.
package transform

import (
	"context"
	"image"
	"path/filepath"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage resizes decoded frames to the shared target geometry. Clips
// already at the target pass through untouched.
type Stage struct {
	ops    ports.ImageOps
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new transform stage.
func NewStage(ops ports.ImageOps, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		ops:    ops,
		sink:   sink,
		logger: logger.WithComponent("transform"),
	}
}

// Execute brings every clip to the target geometry.
func (s *Stage) Execute(ctx context.Context, input pipeline.TransformInput) (pipeline.TransformResult, error) {
	result := pipeline.TransformResult{
		Sequences: make([]pipeline.ClipFrames, 0, len(input.Sequences)),
	}

	scaledIndex := 0
	for _, seq := range input.Sequences {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if seq.Clip.Width == input.Target.Width && seq.Clip.Height == input.Target.Height {
			s.logger.Debug("Clip %s already at target size", filepath.Base(seq.Clip.Path))
			result.Sequences = append(result.Sequences, seq)
			continue
		}

		s.logger.Debug("Resizing %s from %dx%d to %s",
			filepath.Base(seq.Clip.Path), seq.Clip.Width, seq.Clip.Height, input.Target)

		resized := pipeline.ClipFrames{
			Clip:   seq.Clip,
			Frames: make([]image.Image, 0, len(seq.Frames)),
		}
		for _, frame := range seq.Frames {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			scaled := s.ops.ResizeImage(frame, input.Target.Width, input.Target.Height)
			resized.Frames = append(resized.Frames, scaled)

			if s.sink.Enabled() {
				if err := s.sink.SaveScaledFrame(scaledIndex, scaled); err != nil {
					s.logger.Warn("Failed to save scaled frame %d: %v", scaledIndex, err)
				}
			}
			scaledIndex++
		}
		result.Sequences = append(result.Sequences, resized)
	}

	return result, nil
}
