package reloop

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/micahamd/gif-tools/pkg/mocks"
	"github.com/micahamd/gif-tools/pkg/ports"
)

func gifSequence(delays []int) *mocks.FrameSequence {
	frames := make([]ports.Frame, len(delays))
	for i, d := range delays {
		frames[i] = ports.Frame{
			Image:   image.NewRGBA(image.Rect(0, 0, 16, 16)),
			DelayMS: d,
		}
	}
	return mocks.NewFrameSequence(frames, "gif", image.Rect(0, 0, 16, 16))
}

func newTestStage(opener *mocks.SequenceOpener, encoder *mocks.AnimationEncoder, fs *mocks.FileSystem, logger *mocks.Logger) *Stage {
	return New(opener, encoder, fs, &mocks.Progress{}, logger)
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("anim.gif", []byte("gif-data"))
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("anim.gif", gifSequence([]int{50, 100, 150}))
	encoder := &mocks.AnimationEncoder{}
	logger := mocks.NewLogger()
	stage := newTestStage(opener, encoder, fs, logger)

	result, err := stage.Execute(context.Background(), Input{InputPath: "anim.gif"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.OutputPath != "anim_looped.gif" {
		t.Errorf("expected derived output anim_looped.gif, got %s", result.OutputPath)
	}
	if result.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", result.FrameCount)
	}
	if result.AvgDurationMS != 100.0 {
		t.Errorf("expected average duration 100ms, got %v", result.AvgDurationMS)
	}

	if !encoder.BeginCalled || encoder.Width != 16 || encoder.Height != 16 {
		t.Errorf("expected Begin(16, 16), got Begin(%d, %d)", encoder.Width, encoder.Height)
	}
	if len(encoder.AddFrameCalls) != 3 {
		t.Fatalf("expected 3 AddFrame calls, got %d", len(encoder.AddFrameCalls))
	}
	wantDelays := []int{50, 100, 150}
	for i, call := range encoder.AddFrameCalls {
		if call.DelayMS != wantDelays[i] {
			t.Errorf("frame %d: expected delay %d, got %d", i, wantDelays[i], call.DelayMS)
		}
	}

	if _, ok := fs.GetFile("anim_looped.gif"); !ok {
		t.Error("expected output file to be written")
	}
	if !logger.HasMessage("Successfully created looping GIF: anim_looped.gif") {
		t.Error("expected success log")
	}
	if !logger.HasMessage("Frames: 3") {
		t.Error("expected frame count log")
	}
	if !logger.HasMessage("Average duration: 100.0ms per frame") {
		t.Error("expected average duration log")
	}
}

func TestStage_Execute_PreservesDisposal(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("anim.gif", []byte("gif-data"))
	frames := []ports.Frame{
		{Image: image.NewRGBA(image.Rect(0, 0, 8, 8)), DelayMS: 100, Disposal: 2},
		{Image: image.NewRGBA(image.Rect(0, 0, 8, 8)), DelayMS: 100, Disposal: 1},
	}
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("anim.gif", mocks.NewFrameSequence(frames, "gif", image.Rect(0, 0, 8, 8)))
	encoder := &mocks.AnimationEncoder{}
	stage := newTestStage(opener, encoder, fs, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), Input{InputPath: "anim.gif"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if encoder.AddFrameCalls[0].Disposal != 2 || encoder.AddFrameCalls[1].Disposal != 1 {
		t.Error("expected disposal metadata to pass through")
	}
}

func TestStage_Execute_InputNotFound(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := newTestStage(mocks.NewSequenceOpener(), &mocks.AnimationEncoder{}, fs, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), Input{InputPath: "missing.gif"})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.gif") {
		t.Errorf("expected path in error, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected no output file")
	}
}

func TestStage_Execute_NoFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("empty.gif", []byte("gif-data"))
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("empty.gif", gifSequence(nil))
	stage := newTestStage(opener, &mocks.AnimationEncoder{}, fs, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), Input{InputPath: "empty.gif"})
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}

	// Only the seeded input should exist
	if _, ok := fs.GetFile("empty_looped.gif"); ok {
		t.Error("expected no output file for an empty input")
	}
}

func TestStage_Execute_NonGIFWarning(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("pic.png", []byte("png-data"))
	frames := []ports.Frame{{Image: image.NewRGBA(image.Rect(0, 0, 8, 8)), DelayMS: 100}}
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("pic.png", mocks.NewFrameSequence(frames, "png", image.Rect(0, 0, 8, 8)))
	logger := mocks.NewLogger()
	stage := newTestStage(opener, &mocks.AnimationEncoder{}, fs, logger)

	result, err := stage.Execute(context.Background(), Input{InputPath: "pic.png"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !logger.HasMessage("Input file is PNG, not GIF. Converting anyway...") {
		t.Error("expected non-GIF warning")
	}
	if result.OutputPath != "pic_looped.gif" {
		t.Errorf("expected pic_looped.gif, got %s", result.OutputPath)
	}
}

func TestStage_Execute_GIFInputNoWarning(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("anim.gif", []byte("gif-data"))
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("anim.gif", gifSequence([]int{100}))
	logger := mocks.NewLogger()
	stage := newTestStage(opener, &mocks.AnimationEncoder{}, fs, logger)

	_, err := stage.Execute(context.Background(), Input{InputPath: "anim.gif"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if logger.HasMessage("Converting anyway") {
		t.Error("unexpected warning for a GIF input")
	}
}

func TestStage_Execute_ExplicitOutputPath(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("anim.gif", []byte("gif-data"))
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("anim.gif", gifSequence([]int{100}))
	stage := newTestStage(opener, &mocks.AnimationEncoder{}, fs, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), Input{
		InputPath:  "anim.gif",
		OutputPath: "custom.gif",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.OutputPath != "custom.gif" {
		t.Errorf("expected custom.gif, got %s", result.OutputPath)
	}
	if _, ok := fs.GetFile("custom.gif"); !ok {
		t.Error("expected output at explicit path")
	}
}

func TestStage_Execute_SequenceErrorSurfaces(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("anim.gif", []byte("gif-data"))
	seq := gifSequence([]int{100})
	readErr := errors.New("truncated data")
	seq.ErrValue = readErr
	opener := mocks.NewSequenceOpener()
	opener.AddSequence("anim.gif", seq)
	stage := newTestStage(opener, &mocks.AnimationEncoder{}, fs, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), Input{InputPath: "anim.gif"})
	if !errors.Is(err, readErr) {
		t.Fatalf("expected sequence error to surface, got %v", err)
	}
	if _, ok := fs.GetFile("anim_looped.gif"); ok {
		t.Error("expected no output after read failure")
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"animation.gif", "animation_looped.gif"},
		{"dir/clip.gif", "dir/clip_looped.gif"},
		{"pic.png", "pic_looped.gif"},
		{"noext", "noext_looped.gif"},
	}

	for _, tt := range tests {
		if got := deriveOutputPath(tt.input); got != tt.want {
			t.Errorf("deriveOutputPath(%s): expected %s, got %s", tt.input, tt.want, got)
		}
	}
}
