package mocks

import (
	"fmt"
	"sync"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// ClipProber is a mock implementation of ports.ClipProber.
type ClipProber struct {
	mu    sync.RWMutex
	clips map[string]ports.ClipInfo

	ProbeFunc func(path string) (ports.ClipInfo, error)
}

// NewClipProber creates a new mock ClipProber.
func NewClipProber() *ClipProber {
	return &ClipProber{
		clips: make(map[string]ports.ClipInfo),
	}
}

// AddClip seeds canned probe metadata for a path.
func (m *ClipProber) AddClip(info ports.ClipInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clips[info.Path] = info
}

func (m *ClipProber) Probe(path string) (ports.ClipInfo, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if info, ok := m.clips[path]; ok {
		return info, nil
	}
	return ports.ClipInfo{}, fmt.Errorf("no probe data for %s", path)
}

var _ ports.ClipProber = (*ClipProber)(nil)
