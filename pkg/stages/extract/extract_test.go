package extract

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/micahamd/gif-tools/pkg/mocks"
	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	streamer := mocks.NewFrameStreamer(3)
	progress := &mocks.Progress{}
	stage := NewStage(streamer, mocks.NewDebugSink(false), progress, mocks.NewLogger())

	clips := []ports.ClipInfo{
		{Path: "a.mp4", DurationSec: 1.0, Width: 64, Height: 48},
		{Path: "b.mp4", DurationSec: 2.0, Width: 64, Height: 48},
	}

	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		Clips: clips,
		FPS:   12,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Sequences) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(result.Sequences))
	}
	for i, seq := range result.Sequences {
		if len(seq.Frames) != 3 {
			t.Errorf("sequence %d: expected 3 frames, got %d", i, len(seq.Frames))
		}
		if seq.Clip.Path != clips[i].Path {
			t.Errorf("sequence %d: expected clip %s, got %s", i, clips[i].Path, seq.Clip.Path)
		}
	}

	// Frames decode at native geometry
	bounds := result.Sequences[0].Frames[0].Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 48 {
		t.Errorf("expected 64x48 frames, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	if !streamer.AllClosed() {
		t.Error("expected all streams to be closed")
	}
	if progress.AddTotal != 6 {
		t.Errorf("expected 6 progress increments, got %d", progress.AddTotal)
	}
	if len(progress.StartCalls) != 2 {
		t.Errorf("expected 2 progress runs, got %d", len(progress.StartCalls))
	}
	if progress.StartCalls[0].Total != 12 {
		t.Errorf("expected estimated total 12, got %d", progress.StartCalls[0].Total)
	}
}

func TestStage_Execute_OpenFailure(t *testing.T) {
	streamer := mocks.NewFrameStreamer(0)
	streamer.OpenStreamFunc = func(ctx context.Context, info ports.ClipInfo, opts ports.DecodeOptions) (ports.FrameStream, error) {
		return nil, errors.New("spawn failed")
	}
	stage := NewStage(streamer, mocks.NewDebugSink(false), &mocks.Progress{}, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		Clips: []ports.ClipInfo{{Path: "a.mp4", Width: 10, Height: 10}},
		FPS:   10,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "decode a.mp4") {
		t.Errorf("expected wrapped decode error, got %v", err)
	}
}

func TestStage_Execute_StreamErrorSurfaces(t *testing.T) {
	readErr := errors.New("pipe broke")
	stream := mocks.NewFrameStream(nil)
	stream.ErrValue = readErr
	streamer := mocks.NewFrameStreamer(0)
	streamer.OpenStreamFunc = func(ctx context.Context, info ports.ClipInfo, opts ports.DecodeOptions) (ports.FrameStream, error) {
		return stream, nil
	}
	stage := NewStage(streamer, mocks.NewDebugSink(false), &mocks.Progress{}, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		Clips: []ports.ClipInfo{{Path: "a.mp4", Width: 10, Height: 10}},
		FPS:   10,
	})
	if !errors.Is(err, readErr) {
		t.Errorf("expected stream error to surface, got %v", err)
	}
	if stream.CloseCount == 0 {
		t.Error("expected stream to be closed after error")
	}
}

func TestStage_Execute_SavesRawFrames(t *testing.T) {
	streamer := mocks.NewFrameStreamer(2)
	sink := mocks.NewDebugSink(true)
	stage := NewStage(streamer, sink, &mocks.Progress{}, mocks.NewLogger())

	clips := []ports.ClipInfo{
		{Path: "a.mp4", DurationSec: 1.0, Width: 8, Height: 8},
		{Path: "b.mp4", DurationSec: 1.0, Width: 8, Height: 8},
	}

	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{Clips: clips, FPS: 10})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Raw frame numbering is global across clips
	if len(sink.RawFrames) != 4 {
		t.Fatalf("expected 4 raw frames, got %d", len(sink.RawFrames))
	}
	for i := 0; i < 4; i++ {
		if _, ok := sink.RawFrames[i]; !ok {
			t.Errorf("expected raw frame %d to be saved", i)
		}
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	streamer := mocks.NewFrameStreamer(2)
	stage := NewStage(streamer, mocks.NewDebugSink(false), &mocks.Progress{}, mocks.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.ExtractInput{
		Clips: []ports.ClipInfo{{Path: "a.mp4", Width: 8, Height: 8}},
		FPS:   10,
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStage_Execute_FramesAreImages(t *testing.T) {
	streamer := mocks.NewFrameStreamer(1)
	stage := NewStage(streamer, mocks.NewDebugSink(false), &mocks.Progress{}, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		Clips: []ports.ClipInfo{{Path: "a.mp4", DurationSec: 0.1, Width: 4, Height: 4}},
		FPS:   10,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var _ image.Image = result.Sequences[0].Frames[0]
}
