package mocks

import (
	"fmt"
	"image"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// FrameSequence is a mock implementation of ports.FrameSequence.
type FrameSequence struct {
	frames []ports.Frame
	format string
	bounds image.Rectangle
	index  int

	// ErrValue is reported by Err once the frames are consumed.
	ErrValue error
}

// NewFrameSequence creates a mock sequence over the given frames.
func NewFrameSequence(frames []ports.Frame, format string, bounds image.Rectangle) *FrameSequence {
	return &FrameSequence{
		frames: frames,
		format: format,
		bounds: bounds,
		index:  -1,
	}
}

func (m *FrameSequence) Next() bool {
	if m.index+1 >= len(m.frames) {
		return false
	}
	m.index++
	return true
}

func (m *FrameSequence) Frame() ports.Frame {
	return m.frames[m.index]
}

func (m *FrameSequence) Err() error {
	if m.index+1 >= len(m.frames) {
		return m.ErrValue
	}
	return nil
}

func (m *FrameSequence) Format() string {
	return m.format
}

func (m *FrameSequence) Bounds() image.Rectangle {
	return m.bounds
}

var _ ports.FrameSequence = (*FrameSequence)(nil)

// SequenceOpener is a mock implementation of ports.SequenceOpener.
type SequenceOpener struct {
	sequences map[string]ports.FrameSequence

	OpenSequenceFunc func(path string) (ports.FrameSequence, error)
}

// NewSequenceOpener creates a new mock SequenceOpener.
func NewSequenceOpener() *SequenceOpener {
	return &SequenceOpener{
		sequences: make(map[string]ports.FrameSequence),
	}
}

// AddSequence seeds a canned sequence for a path.
func (m *SequenceOpener) AddSequence(path string, seq ports.FrameSequence) {
	m.sequences[path] = seq
}

func (m *SequenceOpener) OpenSequence(path string) (ports.FrameSequence, error) {
	if m.OpenSequenceFunc != nil {
		return m.OpenSequenceFunc(path)
	}
	if seq, ok := m.sequences[path]; ok {
		return seq, nil
	}
	return nil, fmt.Errorf("no sequence for %s", path)
}

var _ ports.SequenceOpener = (*SequenceOpener)(nil)
