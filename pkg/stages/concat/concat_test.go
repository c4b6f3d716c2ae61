package concat

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/micahamd/gif-tools/pkg/mocks"
	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

func tintedClip(path string, duration float64, tint uint8, count int) pipeline.ClipFrames {
	frames := make([]image.Image, count)
	for i := range frames {
		frames[i] = mocks.SolidFrame(8, 8, color.RGBA{R: tint, G: uint8(i), A: 255})
	}
	return pipeline.ClipFrames{
		Clip:   ports.ClipInfo{Path: path, DurationSec: duration, Width: 8, Height: 8},
		Frames: frames,
	}
}

func frameTint(img image.Image) uint8 {
	r, _, _, _ := img.At(0, 0).RGBA()
	return uint8(r >> 8)
}

func TestStage_Execute_SingleClip(t *testing.T) {
	logger := mocks.NewLogger()
	stage := NewStage(logger)

	result, err := stage.Execute(context.Background(), pipeline.ConcatInput{
		Sequences: []pipeline.ClipFrames{tintedClip("a.mp4", 2.5, 40, 3)},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Frames) != 3 {
		t.Errorf("expected 3 frames, got %d", len(result.Frames))
	}
	if result.ClipCount != 1 {
		t.Errorf("expected clip count 1, got %d", result.ClipCount)
	}
	if !logger.HasMessage("Converting single video to GIF...") {
		t.Error("expected single-video log")
	}
	if logger.HasMessage("Stitching") {
		t.Error("unexpected stitching log for a single clip")
	}
	if !logger.HasMessage("Total duration: 2.5 seconds") {
		t.Error("expected total duration log")
	}
}

func TestStage_Execute_MultipleClipsKeepOrder(t *testing.T) {
	logger := mocks.NewLogger()
	stage := NewStage(logger)

	result, err := stage.Execute(context.Background(), pipeline.ConcatInput{
		Sequences: []pipeline.ClipFrames{
			tintedClip("a.mp4", 1.0, 40, 2),
			tintedClip("b.mp4", 1.5, 80, 2),
			tintedClip("c.mp4", 1.0, 120, 1),
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(result.Frames))
	}
	wantTints := []uint8{40, 40, 80, 80, 120}
	for i, want := range wantTints {
		if got := frameTint(result.Frames[i]); got != want {
			t.Errorf("frame %d: expected tint %d, got %d", i, want, got)
		}
	}

	if result.ClipCount != 3 {
		t.Errorf("expected clip count 3, got %d", result.ClipCount)
	}
	if !logger.HasMessage("Stitching 3 videos together...") {
		t.Error("expected stitching log")
	}
	if !logger.HasMessage("Converting combined video to GIF...") {
		t.Error("expected combined conversion log")
	}
	if !logger.HasMessage("Total duration: 3.5 seconds") {
		t.Error("expected total duration log")
	}
}

func TestStage_Execute_NoClips(t *testing.T) {
	stage := NewStage(mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.ConcatInput{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
