package pipeline

import (
	"fmt"
	"image"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Geometry represents output pixel dimensions.
type Geometry struct {
	Width  int
	Height int
}

// String formats the geometry as "WxH".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ClipFrames holds the decoded frames of one clip together with its
// container metadata.
type ClipFrames struct {
	Clip   ports.ClipInfo
	Frames []image.Image
}

// =============================================================================
// Resolve Stage Types
// =============================================================================

// ResolveInput contains the raw CLI inputs for input resolution.
type ResolveInput struct {
	// Patterns are file paths or shell glob patterns, in user order.
	Patterns []string
}

// ResolveResult contains the validated input files.
type ResolveResult struct {
	// Paths are the existing files with the expected extension, in
	// expansion order.
	Paths []string

	// Skipped counts candidates dropped by validation.
	Skipped int
}

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput contains the files to probe.
type ProbeInput struct {
	Paths []string
}

// ProbeResult contains per-clip container metadata.
type ProbeResult struct {
	Clips []ports.ClipInfo

	// TotalDurationSec is the sum of all clip durations.
	TotalDurationSec float64
}

// =============================================================================
// Plan Stage Types
// =============================================================================

// PlanInput contains parameters for target geometry and frame-rate
// resolution. The first clip is the geometry reference for the whole
// run.
type PlanInput struct {
	NativeWidth  int
	NativeHeight int

	// RequestedWidth is the --width argument, 0 when absent.
	RequestedWidth int

	// ScaleFactor is the quality preset's scale, used when no width
	// is requested.
	ScaleFactor float64

	// RequestedFPS is the --fps argument.
	RequestedFPS int

	// PresetFPS is the quality preset's frame rate.
	PresetFPS int

	// DefaultFPS is the tool's own default frame rate. The preset
	// rate applies only while RequestedFPS equals this value.
	DefaultFPS int
}

// PlanResult contains the resolved conversion parameters.
type PlanResult struct {
	// Target is the shared output geometry, both dimensions even.
	Target Geometry

	// FPS is the resolved output frame rate.
	FPS int
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains the clips to decode.
type ExtractInput struct {
	Clips []ports.ClipInfo

	// FPS is the sampling frame rate for decoding.
	FPS int
}

// ExtractResult contains decoded frames per clip, at native geometry.
type ExtractResult struct {
	Sequences []ClipFrames
}

// =============================================================================
// Transform Stage Types
// =============================================================================

// TransformInput contains decoded clips and the shared target geometry.
type TransformInput struct {
	Sequences []ClipFrames
	Target    Geometry
}

// TransformResult contains the clips with all frames at target
// geometry. Clips already matching the target pass through unchanged.
type TransformResult struct {
	Sequences []ClipFrames
}

// =============================================================================
// Concat Stage Types
// =============================================================================

// ConcatInput contains the per-clip frame sequences to combine.
type ConcatInput struct {
	Sequences []ClipFrames
}

// ConcatResult contains the single combined frame sequence, in input
// order with clip boundaries preserved.
type ConcatResult struct {
	Frames    []image.Image
	ClipCount int
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frames and parameters for GIF encoding.
type EncodeInput struct {
	Frames []image.Image
	Target Geometry
	FPS    int
}

// EncodeResult contains the encoded GIF.
type EncodeResult struct {
	GIFData    []byte
	FrameCount int

	// DurationMs is the declared playback duration of one loop.
	DurationMs int
}
