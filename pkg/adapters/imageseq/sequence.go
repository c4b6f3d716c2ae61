package imageseq

import (
	"image"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Sequence is a finite, non-restartable iterator over decoded frames.
type Sequence struct {
	frames []ports.Frame
	format string
	bounds image.Rectangle
	index  int
	err    error
}

var _ ports.FrameSequence = (*Sequence)(nil)

func newSequence(frames []ports.Frame, format string, bounds image.Rectangle) *Sequence {
	return &Sequence{
		frames: frames,
		format: format,
		bounds: bounds,
		index:  -1,
	}
}

// Next advances to the next frame. Exhaustion is the normal stop
// signal and leaves Err nil.
func (s *Sequence) Next() bool {
	if s.index+1 >= len(s.frames) {
		return false
	}
	s.index++
	return true
}

// Frame returns the current frame. Valid only after a true Next.
func (s *Sequence) Frame() ports.Frame {
	return s.frames[s.index]
}

// Err returns the first error encountered during iteration.
func (s *Sequence) Err() error {
	return s.err
}

// Format returns the declared format of the source.
func (s *Sequence) Format() string {
	return s.format
}

// Bounds returns the logical screen dimensions of the sequence.
func (s *Sequence) Bounds() image.Rectangle {
	return s.bounds
}
