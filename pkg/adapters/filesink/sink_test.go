package filesink

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/micahamd/gif-tools/pkg/mocks"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	fs := mocks.NewFileSystem()
	ops := &mocks.ImageOps{}
	sink := New(testBaseDir, fs, ops)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveProbeJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	ops := &mocks.ImageOps{}
	sink := New(testBaseDir, fs, ops)

	data := []byte(`{"duration_sec": 2.5}`)
	err := sink.SaveProbeJSON(data)
	if err != nil {
		t.Fatalf("SaveProbeJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "probe.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	ops := &mocks.ImageOps{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
	sink := New(testBaseDir, fs, ops)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	err := sink.SaveRawFrame(0, img)
	if err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "raw", "frame-0000.png")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveScaledFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	ops := &mocks.ImageOps{}
	sink := New(testBaseDir, fs, ops)

	img := image.NewRGBA(image.Rect(0, 0, 448, 336))
	err := sink.SaveScaledFrame(5, img)
	if err != nil {
		t.Fatalf("SaveScaledFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "scaled", "frame-0005.png")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}

	if len(ops.EncodeCalls) != 1 {
		t.Fatalf("expected 1 encode call, got %d", len(ops.EncodeCalls))
	}
	if ops.EncodeCalls[0].Format != ports.FormatPNG {
		t.Errorf("expected PNG encoding, got format %d", ops.EncodeCalls[0].Format)
	}
}

func TestSink_MultipleRawFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	ops := &mocks.ImageOps{}
	sink := New(testBaseDir, fs, ops)

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < 10; i++ {
		err := sink.SaveRawFrame(i, img)
		if err != nil {
			t.Fatalf("SaveRawFrame %d failed: %v", i, err)
		}
	}

	files := fs.GetAllFiles()
	if len(files) != 10 {
		t.Errorf("expected 10 files, got %d", len(files))
	}
}

func TestSink_ImplementsInterface(t *testing.T) {
	var _ ports.DebugSink = (*Sink)(nil)
}
