// Package plan implements target geometry and frame-rate resolution.
package plan

import (
	"context"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage resolves the shared output geometry and frame rate. It is
// pure: the first clip's native dimensions are the reference for the
// whole run.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new plan stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("plan"),
	}
}

// Execute computes the target geometry and frame rate.
func (s *Stage) Execute(ctx context.Context, input pipeline.PlanInput) (pipeline.PlanResult, error) {
	var width, height int

	if input.RequestedWidth > 0 {
		width = input.RequestedWidth
		height = int(float64(input.RequestedWidth) / float64(input.NativeWidth) * float64(input.NativeHeight))
	} else {
		width = int(float64(input.NativeWidth) * input.ScaleFactor)
		height = int(float64(input.NativeHeight) * input.ScaleFactor)
	}

	// Even dimensions keep downstream codecs happy.
	if width%2 != 0 {
		width--
	}
	if height%2 != 0 {
		height--
	}

	fps := input.RequestedFPS
	if fps == input.DefaultFPS {
		// The preset rate applies only while --fps is untouched. An
		// explicit --fps equal to the default is indistinguishable
		// from the default and is overridden too.
		fps = input.PresetFPS
	}

	s.logger.Info("Target size for all videos: %dx%d", width, height)
	s.logger.Info("Target FPS: %d", fps)

	return pipeline.PlanResult{
		Target: pipeline.Geometry{Width: width, Height: height},
		FPS:    fps,
	}, nil
}
