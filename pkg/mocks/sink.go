package mocks

import (
	"image"
	"sync"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu      sync.Mutex
	enabled bool

	ProbeJSON    []byte
	RawFrames    map[int]image.Image
	ScaledFrames map[int]image.Image
}

// NewDebugSink creates a new mock debug sink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:      enabled,
		RawFrames:    make(map[int]image.Image),
		ScaledFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveProbeJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProbeJSON = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveRawFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RawFrames[index] = img
	return nil
}

func (m *DebugSink) SaveScaledFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScaledFrames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
