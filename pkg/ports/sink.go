package ports

import "image"

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveProbeJSON saves the clip probing results as JSON.
	SaveProbeJSON(data []byte) error

	// SaveRawFrame saves a decoded frame before resizing.
	SaveRawFrame(index int, img image.Image) error

	// SaveScaledFrame saves a frame after resizing to the target
	// geometry.
	SaveScaledFrame(index int, img image.Image) error
}
