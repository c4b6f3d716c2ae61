package mocks

import (
	"image"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// ImageOps is a mock implementation of ports.ImageOps.
type ImageOps struct {
	ResizeImageFunc func(img image.Image, width, height int) image.Image
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// Recorded calls for verification
	ResizeCalls []ResizeCall
	EncodeCalls []EncodeCall
}

// ResizeCall records a call to ResizeImage.
type ResizeCall struct {
	Width  int
	Height int
}

// EncodeCall records a call to EncodeImage.
type EncodeCall struct {
	Format  ports.ImageFormat
	Quality int
}

func (m *ImageOps) ResizeImage(img image.Image, width, height int) image.Image {
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{Width: width, Height: height})
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *ImageOps) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{Format: format, Quality: quality})
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

var _ ports.ImageOps = (*ImageOps)(nil)
