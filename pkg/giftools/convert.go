package giftools

import (
	"context"

	"github.com/micahamd/gif-tools/pkg/adapters/ffmpegdecoder"
	"github.com/micahamd/gif-tools/pkg/adapters/gifenc"
	"github.com/micahamd/gif-tools/pkg/adapters/imageops"
	"github.com/micahamd/gif-tools/pkg/adapters/logger"
	"github.com/micahamd/gif-tools/pkg/adapters/mp4probe"
	"github.com/micahamd/gif-tools/pkg/adapters/nullsink"
	"github.com/micahamd/gif-tools/pkg/adapters/osfilesystem"
	"github.com/micahamd/gif-tools/pkg/adapters/termprogress"
	"github.com/micahamd/gif-tools/pkg/orchestrator"
	"github.com/micahamd/gif-tools/pkg/reloop"
	"github.com/micahamd/gif-tools/pkg/stages/concat"
	"github.com/micahamd/gif-tools/pkg/stages/encode"
	"github.com/micahamd/gif-tools/pkg/stages/extract"
	"github.com/micahamd/gif-tools/pkg/stages/plan"
	"github.com/micahamd/gif-tools/pkg/stages/probe"
	"github.com/micahamd/gif-tools/pkg/stages/resolve"
	"github.com/micahamd/gif-tools/pkg/stages/transform"
)

// Convert turns the given MP4 inputs into one continuously looping GIF.
// An empty outputPath derives the location from the inputs.
// This is a convenience function that uses default adapters (silent
// logger, no progress bar). For custom dependencies, build the stages
// and orchestrator directly:
//
//	orch := orchestrator.New(
//	    resolve.NewStage(fs, myLogger),
//	    probe.NewStage(mp4probe.New(), sink, myLogger),
//	    ...
//	)
//	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(inputs, output))
func Convert(ctx context.Context, inputs []string, outputPath string, cfg Config) (orchestrator.RunResult, error) {
	log := logger.NewNoop()
	fs := osfilesystem.New()
	progress := termprogress.NewDisabled()
	sink := nullsink.New()

	var decoder *ffmpegdecoder.Decoder
	if cfg.FFmpegPath != "" {
		decoder = ffmpegdecoder.NewWithPath(cfg.FFmpegPath)
	} else {
		decoder = ffmpegdecoder.New()
	}

	orch := orchestrator.New(
		resolve.NewStage(fs, log),
		probe.NewStage(mp4probe.New(), sink, log),
		plan.NewStage(log),
		extract.NewStage(decoder, sink, progress, log),
		transform.NewStage(imageops.New(), sink, log),
		concat.NewStage(log),
		encode.NewStage(gifenc.New(), progress, log),
		fs,
		log,
	)

	return orch.Run(ctx, cfg.ToOrchestratorConfig(inputs, outputPath))
}

// Reloop rewrites the animated image at inputPath with an infinite loop
// count. An empty outputPath derives <base>_looped.gif. See the reloop
// package for the underlying pipeline.
func Reloop(inputPath, outputPath string) (reloop.Result, error) {
	return reloop.Reloop(inputPath, outputPath)
}
