package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// LogEntry records a single logged message.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a mock implementation of ports.Logger that records all
// messages for verification.
type Logger struct {
	mu        sync.Mutex
	component string
	entries   *[]LogEntry
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	entries := make([]LogEntry, 0)
	return &Logger{entries: &entries}
}

func (m *Logger) log(level ports.LogLevel, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	formatted := msg
	if len(args) > 0 {
		formatted = fmt.Sprintf(msg, args...)
	}
	*m.entries = append(*m.entries, LogEntry{Level: level, Component: m.component, Message: formatted})
}

func (m *Logger) Debug(msg string, args ...interface{}) {
	m.log(ports.LevelDebug, msg, args...)
}

func (m *Logger) Info(msg string, args ...interface{}) {
	m.log(ports.LevelInfo, msg, args...)
}

func (m *Logger) Warn(msg string, args ...interface{}) {
	m.log(ports.LevelWarn, msg, args...)
}

func (m *Logger) Error(msg string, args ...interface{}) {
	m.log(ports.LevelError, msg, args...)
}

// WithComponent returns a child logger that records into the same
// entry list with the component name attached.
func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{component: component, entries: m.entries}
}

// Entries returns a copy of all recorded entries.
func (m *Logger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(*m.entries))
	copy(out, *m.entries)
	return out
}

// Messages returns all recorded messages at the given level.
func (m *Logger) Messages(level ports.LogLevel) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range *m.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Warnings returns all recorded warning messages.
func (m *Logger) Warnings() []string {
	return m.Messages(ports.LevelWarn)
}

// Errors returns all recorded error messages.
func (m *Logger) Errors() []string {
	return m.Messages(ports.LevelError)
}

// HasMessage reports whether any recorded message contains the
// given substring.
func (m *Logger) HasMessage(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range *m.entries {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
