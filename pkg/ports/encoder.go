package ports

import "image"

// AnimationEncoder abstracts animated-image encoding. Frames are added
// one at a time and the encoded file is produced by End. Every output
// carries infinite-repeat loop metadata.
type AnimationEncoder interface {
	// Begin starts a new animation with the given logical screen
	// dimensions.
	Begin(width, height int) error

	// AddFrame appends one frame with its display duration in
	// milliseconds. Already-paletted frames are passed through
	// without requantization; their bounds and disposal metadata are
	// preserved.
	AddFrame(img image.Image, delayMS int, disposal byte) error

	// End finalizes the animation and returns the encoded bytes.
	End() ([]byte, error)
}
