// Package mocks provides mock implementations for testing.
package mocks

import (
	"image"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	BeginFunc    func(width, height int) error
	AddFrameFunc func(img image.Image, delayMS int, disposal byte) error
	EndFunc      func() ([]byte, error)

	// Recorded calls for verification
	BeginCalled   bool
	Width         int
	Height        int
	AddFrameCalls []AddFrameCall
	EndCalled     bool
}

// AddFrameCall records a call to AddFrame.
type AddFrameCall struct {
	Image    image.Image
	DelayMS  int
	Disposal byte
}

func (m *AnimationEncoder) Begin(width, height int) error {
	m.BeginCalled = true
	m.Width = width
	m.Height = height
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height)
	}
	return nil
}

func (m *AnimationEncoder) AddFrame(img image.Image, delayMS int, disposal byte) error {
	m.AddFrameCalls = append(m.AddFrameCalls, AddFrameCall{Image: img, DelayMS: delayMS, Disposal: disposal})
	if m.AddFrameFunc != nil {
		return m.AddFrameFunc(img, delayMS, disposal)
	}
	return nil
}

func (m *AnimationEncoder) End() ([]byte, error) {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	// Return a minimal GIF header
	return []byte("GIF89a"), nil
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
