// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	ops     ports.ImageOps
}

// New creates a new Sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, ops ports.ImageOps) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		ops:     ops,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveProbeJSON saves the per-clip probe results as JSON.
func (s *Sink) SaveProbeJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "probe.json")
	return s.fs.WriteFile(path, data)
}

// SaveRawFrame saves a decoded frame before any resizing.
func (s *Sink) SaveRawFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", "raw")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	data, err := s.ops.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode raw frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveScaledFrame saves a frame after resizing to the target geometry.
func (s *Sink) SaveScaledFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", "scaled")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	data, err := s.ops.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode scaled frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
