package ffmpegdecoder

import "errors"

var (
	// ErrFFmpegNotFound is returned when no usable ffmpeg binary can
	// be located.
	ErrFFmpegNotFound = errors.New("ffmpegdecoder: ffmpeg not found in PATH")
)
