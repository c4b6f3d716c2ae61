// Package imageops provides pure-Go image resizing and still-image
// encoding.
package imageops

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Ops implements ports.ImageOps.
type Ops struct{}

// New creates a new Ops.
func New() *Ops {
	return &Ops{}
}

// ResizeImage resizes an image to the specified dimensions using
// Catmull-Rom interpolation.
func (o *Ops) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// EncodeImage encodes an image to the specified format.
func (o *Ops) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Ops implements ports.ImageOps
var _ ports.ImageOps = (*Ops)(nil)
