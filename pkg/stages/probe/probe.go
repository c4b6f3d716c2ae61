// Package probe implements the clip metadata probing stage.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage reads container-level metadata for each input clip without
// decoding any frames.
type Stage struct {
	prober ports.ClipProber
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(prober ports.ClipProber, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		prober: prober,
		sink:   sink,
		logger: logger.WithComponent("probe"),
	}
}

// Execute probes all input clips and accumulates their durations.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{
		Clips: make([]ports.ClipInfo, 0, len(input.Paths)),
	}

	s.logger.Info("Loading %d video file(s):", len(input.Paths))

	for i, path := range input.Paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.logger.Info("  %d. %s", i+1, filepath.Base(path))

		info, err := s.prober.Probe(path)
		if err != nil {
			return result, fmt.Errorf("probe %s: %w", path, err)
		}

		s.logger.Info("Duration: %.1fs, FPS: %.1f, Size: %dx%d",
			info.DurationSec, info.FPS, info.Width, info.Height)

		result.Clips = append(result.Clips, info)
		result.TotalDurationSec += info.DurationSec
	}

	if s.sink.Enabled() {
		if data, err := json.MarshalIndent(result.Clips, "", "  "); err == nil {
			if err := s.sink.SaveProbeJSON(data); err != nil {
				s.logger.Warn("Failed to save probe JSON: %v", err)
			}
		}
	}

	return result, nil
}
