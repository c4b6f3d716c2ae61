package mocks

import (
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Progress is a mock implementation of ports.Progress.
type Progress struct {
	StartCalls   []StartCall
	AddTotal     int
	FinishCalled bool
}

// StartCall records a call to Start.
type StartCall struct {
	Total       int
	Description string
}

func (m *Progress) Start(total int, description string) {
	m.StartCalls = append(m.StartCalls, StartCall{Total: total, Description: description})
}

func (m *Progress) Add(n int) {
	m.AddTotal += n
}

func (m *Progress) Finish() {
	m.FinishCalled = true
}

var _ ports.Progress = (*Progress)(nil)
