package ports

import (
	"context"
	"image"
)

// ClipInfo describes a video clip at the container level, without
// decoding any frames.
type ClipInfo struct {
	Path string

	// DurationSec is the clip duration in seconds.
	DurationSec float64

	// FPS is the native frame rate.
	FPS float64

	// Width and Height are the native pixel dimensions.
	Width  int
	Height int

	// FrameCount is the number of video samples in the container.
	FrameCount int
}

// ClipProber reads container metadata from a video file.
type ClipProber interface {
	// Probe inspects the file at path and returns its metadata.
	Probe(path string) (ClipInfo, error)
}

// DecodeOptions controls how a clip is decoded into frames.
type DecodeOptions struct {
	// FPS is the frame rate to sample the clip at. Zero means the
	// clip's native rate.
	FPS int

	// Width and Height are the pixel dimensions frames are decoded
	// at. Zero means the clip's native dimensions.
	Width  int
	Height int
}

// FrameStream is a finite sequence of decoded frames read one at a
// time. Next reports whether a frame is available; exhaustion is the
// normal termination and is not an error. Close must be called on
// every path to release the underlying decoder.
type FrameStream interface {
	// Next advances to the next frame. It returns false when the
	// stream is exhausted or a read error occurred.
	Next() bool

	// Frame returns the current frame. Valid only after a true Next.
	Frame() *image.RGBA

	// Err returns the first error encountered, nil on clean
	// exhaustion.
	Err() error

	// Close releases decoder resources. Safe to call more than once.
	Close() error
}

// FrameStreamer decodes video clips into frame streams.
type FrameStreamer interface {
	// OpenStream starts decoding the clip described by info using
	// the given options.
	OpenStream(ctx context.Context, info ClipInfo, opts DecodeOptions) (FrameStream, error)
}
