package reloop

import (
	"context"

	"github.com/micahamd/gif-tools/pkg/adapters/gifenc"
	"github.com/micahamd/gif-tools/pkg/adapters/imageseq"
	"github.com/micahamd/gif-tools/pkg/adapters/logger"
	"github.com/micahamd/gif-tools/pkg/adapters/osfilesystem"
	"github.com/micahamd/gif-tools/pkg/adapters/termprogress"
)

// Reloop rewrites the animated image at inputPath with an infinite
// loop count. An empty outputPath derives <base>_looped.gif.
// This is a convenience function that uses default adapters.
// For custom dependencies (e.g., custom logger), use the Stage API
// instead:
//
//	stage := reloop.New(
//	    imageseq.New(),
//	    gifenc.New(),
//	    osfilesystem.New(),
//	    termprogress.NewDisabled(),
//	    myCustomLogger,
//	)
//	result, err := stage.Execute(ctx, reloop.Input{
//	    InputPath:  "animation.gif",
//	    OutputPath: "animation_looped.gif",
//	})
func Reloop(inputPath, outputPath string) (Result, error) {
	stage := New(
		imageseq.New(),
		gifenc.New(),
		osfilesystem.New(),
		termprogress.NewDisabled(),
		logger.NewNoop(),
	)

	return stage.Execute(context.Background(), Input{
		InputPath:  inputPath,
		OutputPath: outputPath,
	})
}
