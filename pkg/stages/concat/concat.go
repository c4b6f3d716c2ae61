// Package concat implements the clip concatenation stage.
package concat

import (
	"context"
	"fmt"
	"image"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage joins the per-clip frame sequences into one, strictly in
// input order. No transitions are inserted between clips.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new concat stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("concat"),
	}
}

// Execute combines all sequences into a single frame list.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConcatInput) (pipeline.ConcatResult, error) {
	result := pipeline.ConcatResult{}

	if len(input.Sequences) == 0 {
		return result, fmt.Errorf("no clips to combine")
	}

	totalDuration := 0.0
	totalFrames := 0
	for _, seq := range input.Sequences {
		totalDuration += seq.Clip.DurationSec
		totalFrames += len(seq.Frames)
	}
	s.logger.Info("Total duration: %.1f seconds", totalDuration)

	result.Frames = make([]image.Image, 0, totalFrames)
	result.ClipCount = len(input.Sequences)

	if len(input.Sequences) == 1 {
		s.logger.Info("Converting single video to GIF...")
		result.Frames = append(result.Frames, input.Sequences[0].Frames...)
		return result, nil
	}

	s.logger.Info("Stitching %d videos together...", len(input.Sequences))
	for _, seq := range input.Sequences {
		result.Frames = append(result.Frames, seq.Frames...)
	}
	s.logger.Info("Converting combined video to GIF...")

	return result, nil
}
