// Package imageseq opens animated image files as frame sequences. It
// detects the container from the file signature: GIF frames pass
// through with their palettes and disposal metadata, APNG frames are
// coalesced onto the logical canvas, and any other decodable still
// becomes a single-frame sequence.
package imageseq

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"

	"github.com/kettek/apng"

	// Registered decoders for the single-frame fallback path.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// DefaultFrameDelayMS is the display duration assumed for frames with
// absent or non-positive timing metadata.
const DefaultFrameDelayMS = 100

var (
	gifSignature = []byte("GIF8")
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
)

// Opener implements ports.SequenceOpener.
type Opener struct{}

// Compile-time check that Opener implements ports.SequenceOpener.
var _ ports.SequenceOpener = (*Opener)(nil)

// New creates a new Opener.
func New() *Opener {
	return &Opener{}
}

// OpenSequence opens the file at path and prepares its frames for
// iteration.
func (o *Opener) OpenSequence(path string) (ports.FrameSequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return FromBytes(data)
}

// FromBytes builds a frame sequence from in-memory image data.
func FromBytes(data []byte) (ports.FrameSequence, error) {
	switch {
	case bytes.HasPrefix(data, gifSignature):
		return decodeGIF(data)
	case bytes.HasPrefix(data, pngSignature):
		return decodeAPNG(data)
	default:
		return decodeStill(data)
	}
}

func decodeGIF(data []byte) (*Sequence, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}

	frames := make([]ports.Frame, 0, len(g.Image))
	for i, img := range g.Image {
		delayMS := 0
		if i < len(g.Delay) {
			delayMS = g.Delay[i] * 10
		}
		if delayMS <= 0 {
			delayMS = DefaultFrameDelayMS
		}

		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		frames = append(frames, ports.Frame{Image: img, DelayMS: delayMS, Disposal: disposal})
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}

	return newSequence(frames, "gif", bounds), nil
}

// decodeAPNG decodes both animated and still PNGs. Partial animation
// frames are composited onto the logical canvas so every yielded frame
// is full-size.
func decodeAPNG(data []byte) (*Sequence, error) {
	a, err := apng.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	if len(a.Frames) == 0 {
		return newSequence(nil, "png", image.Rectangle{}), nil
	}

	bounds := a.Frames[0].Image.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	var frames []ports.Frame
	for _, fr := range a.Frames {
		if fr.IsDefault {
			// The default image is not part of the animation.
			continue
		}

		fb := fr.Image.Bounds()
		region := image.Rect(fr.XOffset, fr.YOffset, fr.XOffset+fb.Dx(), fr.YOffset+fb.Dy())

		var snapshot *image.RGBA
		if fr.DisposeOp == apng.DISPOSE_OP_PREVIOUS {
			snapshot = cloneRGBA(canvas)
		}

		op := draw.Over
		if fr.BlendOp == apng.BLEND_OP_SOURCE {
			op = draw.Src
		}
		draw.Draw(canvas, region, fr.Image, fb.Min, op)

		frames = append(frames, ports.Frame{Image: cloneRGBA(canvas), DelayMS: frameDelayMS(fr)})

		switch fr.DisposeOp {
		case apng.DISPOSE_OP_BACKGROUND:
			draw.Draw(canvas, region, image.Transparent, image.Point{}, draw.Src)
		case apng.DISPOSE_OP_PREVIOUS:
			canvas = snapshot
		}
	}

	if len(frames) == 0 {
		// Still PNG, or an APNG whose only frame is the default image.
		// Treat the default image as a single-frame sequence.
		fr := a.Frames[0]
		fb := fr.Image.Bounds()
		still := image.NewRGBA(image.Rect(0, 0, fb.Dx(), fb.Dy()))
		draw.Draw(still, still.Bounds(), fr.Image, fb.Min, draw.Src)
		frames = append(frames, ports.Frame{Image: still, DelayMS: DefaultFrameDelayMS})
	}

	return newSequence(frames, "png", canvas.Bounds()), nil
}

func decodeStill(data []byte) (*Sequence, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	frames := []ports.Frame{{Image: img, DelayMS: DefaultFrameDelayMS}}
	return newSequence(frames, format, img.Bounds()), nil
}

// frameDelayMS converts an APNG delay fraction to milliseconds. A zero
// denominator means hundredths of a second, per the APNG convention.
func frameDelayMS(fr apng.Frame) int {
	num := int(fr.DelayNumerator)
	den := int(fr.DelayDenominator)
	if den == 0 {
		den = 100
	}

	ms := num * 1000 / den
	if ms <= 0 {
		ms = DefaultFrameDelayMS
	}
	return ms
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
