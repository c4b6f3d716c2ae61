package ports

import "image"

// Frame is one still image within an animated sequence, together with
// its display duration.
type Frame struct {
	Image image.Image

	// DelayMS is the display duration in milliseconds.
	DelayMS int

	// Disposal is the GIF disposal method for this frame, zero when
	// unspecified.
	Disposal byte
}

// FrameSequence is a finite, non-restartable iterator over the frames
// of an animated image. Exhaustion is the normal stop signal, not an
// error. Each yielded frame is an independent copy.
type FrameSequence interface {
	// Next advances to the next frame. It returns false when the
	// sequence is exhausted.
	Next() bool

	// Frame returns the current frame. Valid only after a true Next.
	Frame() Frame

	// Err returns the first error encountered during iteration, nil
	// on clean exhaustion.
	Err() error

	// Format returns the declared format of the source ("gif",
	// "png", "jpeg", ...).
	Format() string

	// Bounds returns the logical screen dimensions of the sequence.
	Bounds() image.Rectangle
}

// SequenceOpener opens animated-image files as frame sequences.
type SequenceOpener interface {
	// OpenSequence opens the file at path and prepares its frames
	// for iteration.
	OpenSequence(path string) (FrameSequence, error)
}
