package mocks

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// FrameStream is a mock implementation of ports.FrameStream backed by
// a fixed slice of frames.
type FrameStream struct {
	mu     sync.Mutex
	frames []*image.RGBA
	index  int

	// ErrValue is reported by Err after the frames are consumed,
	// simulating a mid-stream decode failure.
	ErrValue error

	// CloseCount records how many times Close was called.
	CloseCount int

	closed bool
}

// NewFrameStream creates a mock stream yielding the given frames.
func NewFrameStream(frames []*image.RGBA) *FrameStream {
	return &FrameStream{frames: frames, index: -1}
}

func (m *FrameStream) Next() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.index+1 >= len(m.frames) {
		return false
	}
	m.index++
	return true
}

func (m *FrameStream) Frame() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames[m.index]
}

func (m *FrameStream) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index+1 >= len(m.frames) {
		return m.ErrValue
	}
	return nil
}

func (m *FrameStream) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.CloseCount++
	return nil
}

var _ ports.FrameStream = (*FrameStream)(nil)

// FrameStreamer is a mock implementation of ports.FrameStreamer. By
// default each clip yields FramesPerClip solid frames at the requested
// geometry, tinted by clip order so concatenation order is observable.
type FrameStreamer struct {
	mu sync.Mutex

	// FramesPerClip is the default number of frames per stream.
	FramesPerClip int

	OpenStreamFunc func(ctx context.Context, info ports.ClipInfo, opts ports.DecodeOptions) (ports.FrameStream, error)

	// Opened records every stream handed out, for leak assertions.
	Opened []*FrameStream

	clipIndex int
}

// NewFrameStreamer creates a mock streamer yielding framesPerClip
// frames per clip.
func NewFrameStreamer(framesPerClip int) *FrameStreamer {
	return &FrameStreamer{FramesPerClip: framesPerClip}
}

func (m *FrameStreamer) OpenStream(ctx context.Context, info ports.ClipInfo, opts ports.DecodeOptions) (ports.FrameStream, error) {
	if m.OpenStreamFunc != nil {
		return m.OpenStreamFunc(ctx, info, opts)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = info.Width
	}
	if height == 0 {
		height = info.Height
	}

	tint := uint8(40 * (m.clipIndex + 1))
	m.clipIndex++

	frames := make([]*image.RGBA, m.FramesPerClip)
	for i := range frames {
		frames[i] = SolidFrame(width, height, color.RGBA{R: tint, G: uint8(i), A: 255})
	}

	stream := NewFrameStream(frames)
	m.Opened = append(m.Opened, stream)
	return stream, nil
}

// AllClosed reports whether every default stream was closed at least
// once.
func (m *FrameStreamer) AllClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.Opened {
		if s.CloseCount == 0 {
			return false
		}
	}
	return true
}

var _ ports.FrameStreamer = (*FrameStreamer)(nil)

// SolidFrame builds a solid-color RGBA frame (for test fixtures).
func SolidFrame(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
