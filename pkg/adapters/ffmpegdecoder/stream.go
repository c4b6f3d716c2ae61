package ffmpegdecoder

import (
	"fmt"
	"image"
	"io"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// frameStream reads fixed-size RGBA frames off the decoder's stdout
// pipe. Exhaustion (clean EOF plus clean process exit) is normal
// termination and leaves Err nil.
type frameStream struct {
	src    io.ReadCloser
	finish func() error
	abort  func()

	width  int
	height int

	frame  *image.RGBA
	err    error
	done   bool
	closed bool
	waited bool
}

var _ ports.FrameStream = (*frameStream)(nil)

func newFrameStream(src io.ReadCloser, width, height int, finish func() error, abort func()) *frameStream {
	return &frameStream{
		src:    src,
		finish: finish,
		abort:  abort,
		width:  width,
		height: height,
	}
}

// Next reads one frame from the pipe. It returns false on exhaustion
// or error; Err distinguishes the two.
func (s *frameStream) Next() bool {
	if s.done || s.closed {
		return false
	}

	pix := make([]byte, s.width*s.height*4)
	_, err := io.ReadFull(s.src, pix)
	if err == io.EOF {
		// Clean end of stream. A non-zero exit still surfaces via Err.
		s.done = true
		s.err = s.wait()
		return false
	}
	if err != nil {
		// Mid-frame truncation: the process exit error carries the
		// stderr detail, so prefer it when present.
		s.done = true
		if werr := s.wait(); werr != nil {
			s.err = werr
		} else {
			s.err = fmt.Errorf("read frame: %w", err)
		}
		return false
	}

	s.frame = &image.RGBA{
		Pix:    pix,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
	return true
}

// Frame returns the current frame. Valid only after a true Next.
func (s *frameStream) Frame() *image.RGBA {
	return s.frame
}

// Err returns the first error encountered, nil on clean exhaustion.
func (s *frameStream) Err() error {
	return s.err
}

// Close releases the pipe and reaps the child process. Safe to call
// more than once; closing an unfinished stream aborts the decode.
func (s *frameStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.src.Close()
	if !s.waited {
		s.waited = true
		if s.abort != nil {
			s.abort()
		}
	}
	return nil
}

func (s *frameStream) wait() error {
	if s.waited {
		return s.err
	}
	s.waited = true
	if s.finish != nil {
		return s.finish()
	}
	return nil
}
