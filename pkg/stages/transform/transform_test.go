package transform

import (
	"context"
	"image"
	"testing"

	"github.com/micahamd/gif-tools/pkg/mocks"
	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

func clipWithFrames(path string, width, height, count int) pipeline.ClipFrames {
	frames := make([]image.Image, count)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return pipeline.ClipFrames{
		Clip:   ports.ClipInfo{Path: path, Width: width, Height: height},
		Frames: frames,
	}
}

func TestStage_Execute_ResizesMismatchedClip(t *testing.T) {
	ops := &mocks.ImageOps{}
	stage := NewStage(ops, mocks.NewDebugSink(false), mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Sequences: []pipeline.ClipFrames{clipWithFrames("a.mp4", 64, 48, 2)},
		Target:    pipeline.Geometry{Width: 32, Height: 24},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(ops.ResizeCalls) != 2 {
		t.Fatalf("expected 2 resize calls, got %d", len(ops.ResizeCalls))
	}
	for _, call := range ops.ResizeCalls {
		if call.Width != 32 || call.Height != 24 {
			t.Errorf("expected resize to 32x24, got %dx%d", call.Width, call.Height)
		}
	}

	bounds := result.Sequences[0].Frames[0].Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 24 {
		t.Errorf("expected 32x24 output frames, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestStage_Execute_PassthroughMatchingClip(t *testing.T) {
	ops := &mocks.ImageOps{}
	stage := NewStage(ops, mocks.NewDebugSink(false), mocks.NewLogger())

	seq := clipWithFrames("a.mp4", 32, 24, 3)
	result, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Sequences: []pipeline.ClipFrames{seq},
		Target:    pipeline.Geometry{Width: 32, Height: 24},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(ops.ResizeCalls) != 0 {
		t.Errorf("expected no resize calls, got %d", len(ops.ResizeCalls))
	}
	// Untouched clips keep their original frames
	if result.Sequences[0].Frames[0] != seq.Frames[0] {
		t.Error("expected passthrough frames to be unchanged")
	}
}

func TestStage_Execute_MixedClips(t *testing.T) {
	ops := &mocks.ImageOps{}
	stage := NewStage(ops, mocks.NewDebugSink(false), mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Sequences: []pipeline.ClipFrames{
			clipWithFrames("big.mp4", 64, 48, 2),
			clipWithFrames("small.mp4", 32, 24, 2),
		},
		Target: pipeline.Geometry{Width: 32, Height: 24},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(ops.ResizeCalls) != 2 {
		t.Errorf("expected only the mismatched clip resized, got %d calls", len(ops.ResizeCalls))
	}
	if len(result.Sequences) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(result.Sequences))
	}
}

func TestStage_Execute_SavesScaledFrames(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(&mocks.ImageOps{}, sink, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Sequences: []pipeline.ClipFrames{clipWithFrames("a.mp4", 64, 48, 3)},
		Target:    pipeline.Geometry{Width: 32, Height: 24},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(sink.ScaledFrames) != 3 {
		t.Fatalf("expected 3 scaled frames, got %d", len(sink.ScaledFrames))
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	stage := NewStage(&mocks.ImageOps{}, mocks.NewDebugSink(false), mocks.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.TransformInput{
		Sequences: []pipeline.ClipFrames{clipWithFrames("a.mp4", 64, 48, 1)},
		Target:    pipeline.Geometry{Width: 32, Height: 24},
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
