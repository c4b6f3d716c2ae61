// Package gifenc assembles animated GIFs using the standard image/gif
// encoder. Every output carries Netscape loop count 0, the
// infinite-repeat convention.
package gifenc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"

	"github.com/micahamd/gif-tools/pkg/ports"
)

var (
	// ErrNotInitialized is returned when encoder methods are called before Begin.
	ErrNotInitialized = errors.New("gifenc: encoder not initialized")

	// ErrNoFrames is returned when ending an animation with no frames.
	ErrNoFrames = errors.New("gifenc: no frames to encode")
)

// Encoder implements ports.AnimationEncoder. True-color frames are
// quantized to the Plan9 palette with Floyd-Steinberg dithering;
// frames that are already paletted pass through untouched, keeping
// their bounds, palette and disposal metadata.
type Encoder struct {
	width     int
	height    int
	frames    []*image.Paletted
	delays    []int // centiseconds
	disposals []byte
	began     bool
}

// Compile-time check that Encoder implements ports.AnimationEncoder.
var _ ports.AnimationEncoder = (*Encoder)(nil)

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin starts a new animation with the given logical screen size.
func (e *Encoder) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gifenc: invalid logical screen size %dx%d", width, height)
	}

	e.width = width
	e.height = height
	e.frames = nil
	e.delays = nil
	e.disposals = nil
	e.began = true
	return nil
}

// AddFrame appends one frame with its display duration in
// milliseconds. Durations are stored at the centisecond granularity of
// the GIF format, rounded half away from zero.
func (e *Encoder) AddFrame(img image.Image, delayMS int, disposal byte) error {
	if !e.began {
		return ErrNotInitialized
	}

	var frame *image.Paletted
	if p, ok := img.(*image.Paletted); ok {
		frame = p
	} else {
		bounds := img.Bounds()
		frame = image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), palette.Plan9)
		draw.FloydSteinberg.Draw(frame, frame.Bounds(), img, bounds.Min)
	}

	e.frames = append(e.frames, frame)
	e.delays = append(e.delays, int(math.Round(float64(delayMS)/10.0)))
	e.disposals = append(e.disposals, disposal)
	return nil
}

// End finalizes the animation and returns the encoded GIF. When every
// frame shares one palette it is emitted as the global color table,
// which drops the per-frame tables from the output.
func (e *Encoder) End() ([]byte, error) {
	if !e.began {
		return nil, ErrNotInitialized
	}
	if len(e.frames) == 0 {
		return nil, ErrNoFrames
	}

	g := &gif.GIF{
		Image:     e.frames,
		Delay:     e.delays,
		Disposal:  e.disposals,
		LoopCount: 0, // Infinite repeat
		Config: image.Config{
			Width:  e.width,
			Height: e.height,
		},
	}

	if shared := sharedPalette(e.frames); shared != nil {
		g.Config.ColorModel = shared
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, fmt.Errorf("encode GIF: %w", err)
	}

	return buf.Bytes(), nil
}

// sharedPalette returns the common palette of all frames, or nil when
// the frames disagree.
func sharedPalette(frames []*image.Paletted) color.Palette {
	first := frames[0].Palette
	for _, frame := range frames[1:] {
		if !samePalette(first, frame.Palette) {
			return nil
		}
	}
	return first
}

func samePalette(a, b color.Palette) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
