package mocks

import (
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
	RemoveFunc    func(path string) error
	GlobFunc      func(pattern string) ([]string, error)
	FileSizeFunc  func(path string) (int64, error)
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile seeds a file into the mock (for test setup).
func (m *FileSystem) AddFile(filePath string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filePath] = data
}

func (m *FileSystem) ReadFile(filePath string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(filePath)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[filePath]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", filePath)
}

func (m *FileSystem) WriteFile(filePath string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(filePath, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filePath] = data
	return nil
}

func (m *FileSystem) MkdirAll(filePath string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(filePath)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filePath] = true
	return nil
}

func (m *FileSystem) Exists(filePath string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(filePath)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[filePath]; ok {
		return true, nil
	}
	if _, ok := m.dirs[filePath]; ok {
		return true, nil
	}
	return false, nil
}

func (m *FileSystem) Remove(filePath string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(filePath)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, filePath)
	delete(m.dirs, filePath)
	return nil
}

// Glob matches the pattern against the stored file names, sorted.
func (m *FileSystem) Glob(pattern string) ([]string, error) {
	if m.GlobFunc != nil {
		return m.GlobFunc(pattern)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matches []string
	for name := range m.files {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

func (m *FileSystem) FileSize(filePath string) (int64, error) {
	if m.FileSizeFunc != nil {
		return m.FileSizeFunc(filePath)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[filePath]; ok {
		return int64(len(data)), nil
	}
	return 0, fmt.Errorf("file not found: %s", filePath)
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(filePath string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filePath]
	return data, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

var _ ports.FileSystem = (*FileSystem)(nil)
